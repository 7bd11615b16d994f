package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"velocity-monitor/debug"
	"velocity-monitor/midi"
	"velocity-monitor/render"
	"velocity-monitor/theme"
	"velocity-monitor/velocity"
	"velocity-monitor/widgets"
)

// Chart size limits in cells
const (
	defaultRows = 24
	minRows     = 4
	maxRows     = 48
	minCols     = 22

	// header, blank, ruler, labels, blank, help + two border rows
	chromeRows = 8
)

// FrameMsg asks the model to redraw. The render loop sends one per tick.
type FrameMsg struct{}

// Options wires the model to the rest of the program
type Options struct {
	Device   string                    // bound input, shown in the header
	Snapshot func() velocity.Snapshot // optional, held keys and peak
	Stats    func() midi.Stats         // optional ingest counters
	OnClear  func()                    // optional, called on "c"
}

type Model struct {
	Source  render.Drawable
	Theme   *theme.Theme
	Options Options

	raster   Raster
	frames   int
	quitting bool
}

var keyHelp = []widgets.KeyBinding{
	{Key: "c", Desc: "clear"},
	{Key: "q", Desc: "quit"},
}

func NewModel(src render.Drawable, th *theme.Theme, opts Options) Model {
	return Model{
		Source:  src,
		Theme:   th,
		Options: opts,
		raster:  Raster{Cols: velocity.PianoKeys, Rows: defaultRows},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "c":
			if m.Options.OnClear != nil {
				m.Options.OnClear()
			}
		}

	case tea.WindowSizeMsg:
		m.raster = rasterFor(msg.Width, msg.Height)

	case FrameMsg:
		m.frames++
		debug.LogEvery(200, "tui", "frame %d", m.frames)
	}

	return m, nil
}

// Frames returns how many redraws have been requested
func (m Model) Frames() int {
	return m.frames
}

// rasterFor fits the chart inside a terminal, one column per key when
// there is room
func rasterFor(width, height int) Raster {
	cols := width - 2
	if cols > velocity.PianoKeys {
		cols = velocity.PianoKeys
	}
	if cols < minCols {
		cols = minCols
	}

	rows := height - chromeRows
	if rows < minRows {
		rows = minRows
	}
	if rows > maxRows {
		rows = maxRows
	}
	return Raster{Cols: cols, Rows: rows}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	grid := m.raster.Paint(m.Source.Frame())

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	peakStyle := lipgloss.NewStyle().Foreground(m.Theme.Hot()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	var out strings.Builder
	out.WriteString(headerStyle.Render(m.header()))
	if peak := m.peak(); peak != "" {
		out.WriteString(peakStyle.Render(peak))
	}
	if stats := m.stats(); stats != "" {
		out.WriteString(headerStyle.Render(stats))
	}
	out.WriteString("\n\n")
	out.WriteString(m.renderGrid(grid))
	out.WriteString("\n")
	out.WriteString(" " + widgets.RenderRuler(m.raster.Cols, m.Theme.Symbols.Octave, m.Theme.Symbols.Tick, dimStyle))
	out.WriteString("\n")
	out.WriteString(" " + widgets.RenderOctaveLabels(m.raster.Cols, labelStyle))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render(widgets.RenderKeyLine(keyHelp)))

	return out.String()
}

func (m Model) header() string {
	device := m.Options.Device
	if device == "" {
		device = "no device"
	}
	h := "velocity-monitor  " + device
	if m.Options.Snapshot != nil {
		h += fmt.Sprintf("  held:%2d", len(m.Options.Snapshot().Active()))
	}
	return h
}

func (m Model) peak() string {
	if m.Options.Snapshot == nil {
		return ""
	}
	key, vel, ok := m.Options.Snapshot().Loudest()
	if !ok {
		return ""
	}
	return fmt.Sprintf("  peak:%s %3d", widgets.NoteName(key), vel)
}

func (m Model) stats() string {
	if m.Options.Stats == nil {
		return ""
	}
	s := m.Options.Stats()
	return fmt.Sprintf("  notes:%d other:%d", s.Notes, s.Ignored)
}

func (m Model) renderGrid(g Grid) string {
	bg := theme.Lipgloss(g.Background)

	lines := make([]string, len(g.Cells))
	for i, row := range g.Cells {
		var line strings.Builder
		// group runs of identical cells to keep the escape codes down
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end] == row[start] {
				end++
			}
			cell := row[start]
			run := strings.Repeat(string(m.glyph(cell)), end-start)
			if cell.Eighths == 0 {
				line.WriteString(lipgloss.NewStyle().Background(bg).Render(run))
			} else {
				line.WriteString(lipgloss.NewStyle().Foreground(theme.Lipgloss(cell.Color)).Background(bg).Render(run))
			}
			start = end
		}
		lines[i] = line.String()
	}

	body := strings.Join(lines, "\n")
	if !g.HasBorder {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Lipgloss(g.Border)).
		Render(body)
}

// glyph draws full and empty cells with the theme's symbols, partial cells
// with eighth blocks
func (m Model) glyph(c Cell) rune {
	switch c.Eighths {
	case 0:
		return m.Theme.Symbols.Empty
	case len(blocks) - 1:
		return m.Theme.Symbols.Bar
	}
	return c.Glyph()
}
