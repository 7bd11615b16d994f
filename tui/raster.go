package tui

import (
	"velocity-monitor/render"
	"velocity-monitor/theme"
	"velocity-monitor/velocity"
)

// Eighth-block glyphs, index = eighths of a cell covered
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Cell is one terminal cell of the chart
type Cell struct {
	Eighths int // 0 = empty, 8 = full
	Color   theme.RGB
}

// Glyph returns the block character for the cell
func (c Cell) Glyph() rune {
	return blocks[c.Eighths]
}

// Grid is a rasterised frame
type Grid struct {
	Cells      [][]Cell // [row][col], row 0 at the top
	Background theme.RGB
	Border     theme.RGB
	HasBorder  bool
}

// Raster maps drawing commands onto a Cols x Rows cell grid.
// The bar area of the frame (88 key widths by 127 velocity units) is
// stretched over the whole grid; each cell keeps the bar covering most of it.
type Raster struct {
	Cols, Rows int
}

// Paint rasterises one frame
func (r Raster) Paint(cmds []render.Command) Grid {
	g := Grid{Cells: make([][]Cell, r.Rows)}
	for i := range g.Cells {
		g.Cells[i] = make([]Cell, r.Cols)
	}
	if r.Cols <= 0 || r.Rows <= 0 {
		return g
	}

	geom := render.DefaultGeometry
	for _, c := range cmds {
		switch c.Kind {
		case render.Fill:
			g.Background = c.Color
			geom = render.Geometry{Left: c.X, Top: c.Y, Width: c.W, Height: c.H}
		case render.Border:
			g.Border = c.Color
			g.HasBorder = true
		}
	}

	spanW := geom.KeyWidth() * velocity.PianoKeys
	spanH := geom.UnitHeight() * velocity.MaxVelocity
	if spanW <= 0 || spanH <= 0 {
		return g
	}

	for _, c := range cmds {
		if c.Kind == render.Bar {
			r.paintBar(&g, c, geom, spanW, spanH)
		}
	}
	return g
}

func (r Raster) paintBar(g *Grid, c render.Command, geom render.Geometry, spanW, spanH int) {
	x0 := c.X - geom.Left
	x1 := x0 + c.W
	y0 := c.Y - geom.Top
	y1 := y0 + c.H

	// columns whose span overlaps [x0, x1)
	col0 := x0 * r.Cols / spanW
	col1 := (x1*r.Cols + spanW - 1) / spanW
	if col1 > r.Cols {
		col1 = r.Cols
	}

	for row := 0; row < r.Rows; row++ {
		// cell vertical span in drawing units, as fractions to keep precision
		top := float64(row*spanH) / float64(r.Rows)
		bottom := float64((row+1)*spanH) / float64(r.Rows)

		covered := bottom - maxf(top, float64(y0))
		if float64(y1) < bottom {
			covered -= bottom - float64(y1)
		}
		if covered <= 0 {
			continue
		}

		eighths := int(covered / (bottom - top) * 8)
		if eighths == 0 {
			eighths = 1 // any bar shows
		}
		if eighths > 8 {
			eighths = 8
		}

		for col := col0; col < col1; col++ {
			if col < 0 {
				continue
			}
			if eighths > g.Cells[row][col].Eighths {
				g.Cells[row][col] = Cell{Eighths: eighths, Color: c.Color}
			}
		}
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
