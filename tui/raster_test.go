package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velocity-monitor/render"
	"velocity-monitor/velocity"
)

func paint(r Raster, vels map[int]uint8) Grid {
	var s velocity.Snapshot
	for k, v := range vels {
		s[k] = v
	}
	return r.Paint(render.Frame(s, render.DefaultGeometry, render.DefaultColors))
}

func TestPaintEmptyFrame(t *testing.T) {
	g := paint(Raster{Cols: 88, Rows: 8}, nil)
	require.Len(t, g.Cells, 8)
	require.Len(t, g.Cells[0], 88)
	assert.True(t, g.HasBorder)
	assert.Equal(t, render.DefaultColors.Background, g.Background)
	assert.Equal(t, render.DefaultColors.Border, g.Border)
	for _, row := range g.Cells {
		for _, c := range row {
			assert.Zero(t, c.Eighths)
		}
	}
}

func TestPaintFullBar(t *testing.T) {
	g := paint(Raster{Cols: 88, Rows: 8}, map[int]uint8{60: 127})
	col := 60 - velocity.LowestKey
	for row := 0; row < 8; row++ {
		assert.Equal(t, 8, g.Cells[row][col].Eighths, "row %d", row)
		assert.Equal(t, render.DefaultColors.Bar, g.Cells[row][col].Color)
		assert.Zero(t, g.Cells[row][col-1].Eighths)
		assert.Zero(t, g.Cells[row][col+1].Eighths)
	}
}

func TestPaintHalfBar(t *testing.T) {
	g := paint(Raster{Cols: 88, Rows: 8}, map[int]uint8{21: 64})
	want := []int{0, 0, 0, 1, 8, 8, 8, 8}
	for row, e := range want {
		assert.Equal(t, e, g.Cells[row][0].Eighths, "row %d", row)
	}
}

func TestPaintTinyVelocityStillVisible(t *testing.T) {
	g := paint(Raster{Cols: 88, Rows: 8}, map[int]uint8{108: 1})
	assert.Equal(t, 1, g.Cells[7][87].Eighths)
	assert.Zero(t, g.Cells[6][87].Eighths)
}

func TestPaintNarrowGridKeepsEveryKey(t *testing.T) {
	r := Raster{Cols: 44, Rows: 4}
	for key := velocity.LowestKey; key <= velocity.HighestKey; key++ {
		g := paint(r, map[int]uint8{key: 127})
		col := (key - velocity.LowestKey) / 2
		assert.Equal(t, 8, g.Cells[3][col].Eighths, "key %d", key)
	}
}

func TestPaintZeroSizedRaster(t *testing.T) {
	g := paint(Raster{}, map[int]uint8{60: 100})
	assert.Empty(t, g.Cells)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, ' ', Cell{}.Glyph())
	assert.Equal(t, '▄', Cell{Eighths: 4}.Glyph())
	assert.Equal(t, '█', Cell{Eighths: 8}.Glyph())
}
