package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velocity-monitor/theme"
	"velocity-monitor/velocity"
)

func bars(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Kind == Bar {
			out = append(out, c)
		}
	}
	return out
}

func TestFrameSingleKey(t *testing.T) {
	g := Geometry{Width: 880, Height: 1280}
	var s velocity.Snapshot
	s[60] = 100

	cmds := Frame(s, g, DefaultColors)
	require.Len(t, cmds, 3)
	assert.Equal(t, Fill, cmds[0].Kind)
	assert.Equal(t, Border, cmds[1].Kind)

	bar := cmds[2]
	assert.Equal(t, Bar, bar.Kind)
	assert.Equal(t, 60, bar.Key)
	assert.Equal(t, (60-21)*g.KeyWidth(), bar.X)
	assert.Equal(t, g.KeyWidth(), bar.W)
	assert.Equal(t, 100*g.UnitHeight(), bar.H)
	assert.Equal(t, (127-100)*g.UnitHeight(), bar.Y)
	assert.Equal(t, DefaultColors.Bar, bar.Color)
}

func TestFrameDefaultGeometry(t *testing.T) {
	g := DefaultGeometry
	assert.Equal(t, 12, g.KeyWidth())
	assert.Equal(t, 5, g.UnitHeight())

	var s velocity.Snapshot
	s[21] = 127
	s[108] = 1

	b := bars(Frame(s, g, DefaultColors))
	require.Len(t, b, 2)

	assert.Equal(t, Command{Kind: Bar, X: 5, Y: 5, W: 12, H: 635, Color: DefaultColors.Bar, Key: 21, Vel: 127}, b[0])
	assert.Equal(t, Command{Kind: Bar, X: 5 + 87*12, Y: 5 + 126*5, W: 12, H: 5, Color: DefaultColors.Bar, Key: 108, Vel: 1}, b[1])
	// bars sit on the same baseline
	assert.Equal(t, b[0].Y+b[0].H, b[1].Y+b[1].H)
}

func TestFrameSkipsSilentAndUnplayableKeys(t *testing.T) {
	var s velocity.Snapshot
	s[0] = 50
	s[20] = 50
	s[109] = 127
	s[127] = 10

	cmds := Frame(s, DefaultGeometry, DefaultColors)
	assert.Len(t, cmds, 2)
	assert.Empty(t, bars(cmds))
}

func TestFrameBackgroundAndBorder(t *testing.T) {
	cmds := Frame(velocity.Snapshot{}, DefaultGeometry, DefaultColors)
	require.Len(t, cmds, 2)
	assert.Equal(t, Command{Kind: Fill, X: 5, Y: 5, W: 1100, H: 700, Color: theme.RGB{255, 255, 255}}, cmds[0])
	assert.Equal(t, Command{Kind: Border, X: 5, Y: 5, W: 1100, H: 700, Color: theme.RGB{0, 0, 0}}, cmds[1])
}

func TestFrameIsDeterministic(t *testing.T) {
	var s velocity.Snapshot
	for k := velocity.LowestKey; k <= velocity.HighestKey; k += 3 {
		s[k] = uint8(k)
	}
	assert.Equal(t, Frame(s, DefaultGeometry, DefaultColors), Frame(s, DefaultGeometry, DefaultColors))
}

func TestFrameKeyOrder(t *testing.T) {
	var s velocity.Snapshot
	s[90] = 10
	s[30] = 20
	s[60] = 30

	b := bars(Frame(s, DefaultGeometry, DefaultColors))
	require.Len(t, b, 3)
	assert.Equal(t, []int{30, 60, 90}, []int{b[0].Key, b[1].Key, b[2].Key})
}

func TestFrameGradient(t *testing.T) {
	p, err := theme.ParseGPL(strings.NewReader("0 0 0\n255 0 0\n"))
	require.NoError(t, err)
	c := DefaultColors
	c.Gradient = p

	var s velocity.Snapshot
	s[40] = 127
	s[41] = 1

	b := bars(Frame(s, DefaultGeometry, c))
	require.Len(t, b, 2)
	assert.Equal(t, theme.RGB{255, 0, 0}, b[0].Color)
	assert.NotEqual(t, b[0].Color, b[1].Color)
}

func TestSourceReadsLiveTable(t *testing.T) {
	tbl := velocity.NewTable()
	src := &Source{Table: tbl, Geometry: DefaultGeometry, Colors: DefaultColors}

	var d Drawable = src
	assert.Empty(t, bars(d.Frame()))

	tbl.Set(64, 80)
	b := bars(d.Frame())
	require.Len(t, b, 1)
	assert.Equal(t, 64, b[0].Key)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "fill", Fill.String())
	assert.Equal(t, "border", Border.String())
	assert.Equal(t, "bar", Bar.String())
}
