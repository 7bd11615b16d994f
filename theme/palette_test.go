package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoColors = `GIMP Palette
Name: mono
Columns: 2
# comment
  0   0   0	black
255 255 255	white
`

func TestParseGPL(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(twoColors))
	require.NoError(t, err)
	assert.Equal(t, "mono", p.Name)
	assert.Equal(t, []RGB{{0, 0, 0}, {255, 255, 255}}, p.Colors)
}

func TestParseGPLRejectsEmpty(t *testing.T) {
	_, err := ParseGPL(strings.NewReader("GIMP Palette\nName: empty\n"))
	assert.Error(t, err)
}

func TestParseGPLClampsChannels(t *testing.T) {
	p, err := ParseGPL(strings.NewReader("300 -4 12\n"))
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 0, 12}, p.Colors[0])
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.gpl")
	require.NoError(t, os.WriteFile(path, []byte(twoColors), 0o644))

	p, err := LoadGPL(path)
	require.NoError(t, err)
	assert.Len(t, p.Colors, 2)

	_, err = LoadGPL(filepath.Join(t.TempDir(), "missing.gpl"))
	assert.Error(t, err)
}

func TestLookupEndpoints(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(twoColors))
	require.NoError(t, err)

	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(0))
	assert.Equal(t, RGB{255, 255, 255}, p.Lookup(1))
	assert.Equal(t, RGB{255, 255, 255}, p.Lookup(2))

	mid := p.Lookup(0.5)
	assert.InDelta(t, float64(mid[0]), float64(mid[1]), 1)
	assert.InDelta(t, float64(mid[1]), float64(mid[2]), 1)
	assert.Greater(t, mid[0], uint8(0))
	assert.Less(t, mid[0], uint8(255))
}

func TestDefaultPalette(t *testing.T) {
	p := Default()
	assert.Equal(t, "keys", p.Name)
	assert.Len(t, p.Colors, 5)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0a00ff", RGB{10, 0, 255}.Hex())
}

func TestParseGPLReportsBadLine(t *testing.T) {
	_, err := ParseGPL(strings.NewReader("GIMP Palette\n0 0 0\n12 x 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = ParseGPL(strings.NewReader("10 20\n"))
	assert.Error(t, err)
}
