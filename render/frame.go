package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"velocity-monitor/theme"
	"velocity-monitor/velocity"
)

// Kind of drawing command
type Kind int

const (
	Fill   Kind = iota // background fill
	Border             // outline, not filled
	Bar                // one key's velocity bar
)

func (k Kind) String() string {
	switch k {
	case Fill:
		return "fill"
	case Border:
		return "border"
	case Bar:
		return "bar"
	}
	return "unknown"
}

// Command is one rectangle to draw. Key is only set for bars.
type Command struct {
	Kind  Kind
	X, Y  int
	W, H  int
	Color theme.RGB
	Key   int
	Vel   int
}

// Geometry places the chart in drawing units
type Geometry struct {
	Left, Top     int
	Width, Height int
}

// DefaultGeometry is a 1100x700 panel inset by 5 units
var DefaultGeometry = Geometry{Left: 5, Top: 5, Width: 1100, Height: 700}

// KeyWidth is the width of one key's bar
func (g Geometry) KeyWidth() int {
	return g.Width / velocity.PianoKeys
}

// UnitHeight is the bar height per velocity step
func (g Geometry) UnitHeight() int {
	return g.Height / velocity.NumKeys
}

// Colors used for a frame
type Colors struct {
	Background theme.RGB
	Border     theme.RGB
	Bar        theme.RGB

	// Gradient, when set, colours bars by velocity instead of Bar
	Gradient *theme.Palette
}

// DefaultColors is blue bars on white inside a black border
var DefaultColors = Colors{
	Background: rgb(colornames.White),
	Border:     rgb(colornames.Black),
	Bar:        rgb(colornames.Blue),
}

func rgb(c color.RGBA) theme.RGB {
	return theme.RGB{c.R, c.G, c.B}
}

// Frame maps a snapshot to drawing commands: a background fill, a border,
// then one bar per playable key with a non-zero velocity, lowest key first.
// Identical inputs always give identical output.
func Frame(s velocity.Snapshot, g Geometry, c Colors) []Command {
	kw := g.KeyWidth()
	unit := g.UnitHeight()

	cmds := make([]Command, 0, 2+velocity.PianoKeys)
	cmds = append(cmds,
		Command{Kind: Fill, X: g.Left, Y: g.Top, W: g.Width, H: g.Height, Color: c.Background},
		Command{Kind: Border, X: g.Left, Y: g.Top, W: g.Width, H: g.Height, Color: c.Border},
	)

	for key := velocity.LowestKey; key <= velocity.HighestKey; key++ {
		v := int(s[key])
		if v == 0 {
			continue
		}
		cmds = append(cmds, Command{
			Kind:  Bar,
			X:     g.Left + (key-velocity.LowestKey)*kw,
			Y:     g.Top + (velocity.MaxVelocity-v)*unit,
			W:     kw,
			H:     v * unit,
			Color: c.barColor(v),
			Key:   key,
			Vel:   v,
		})
	}
	return cmds
}

func (c Colors) barColor(v int) theme.RGB {
	if c.Gradient == nil {
		return c.Bar
	}
	return c.Gradient.Lookup(float64(v) / velocity.MaxVelocity)
}

// Drawable produces the commands for the next frame
type Drawable interface {
	Frame() []Command
}

// Source draws the live contents of a velocity table
type Source struct {
	Table    *velocity.Table
	Geometry Geometry
	Colors   Colors
}

// Frame implements Drawable
func (s *Source) Frame() []Command {
	return Frame(s.Table.Snapshot(), s.Geometry, s.Colors)
}
