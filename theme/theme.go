package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols

	// Gradient colours bars by velocity instead of a flat bar colour
	Gradient bool
}

type Symbols struct {
	Bar   rune // █ cell fully covered by a velocity bar
	Empty rune //   cell no bar reaches

	// Key ruler under the chart
	Octave rune // ┃ C of each octave
	Tick   rune // ╵ other white keys
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Bar:   '█',
			Empty: ' ',

			Octave: '┃',
			Tick:   '╵',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted  = 0.0 // soft blue
	RoleFG     = 0.5 // cyan
	RoleAccent = 0.75
	RoleHot    = 1.0 // red
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Hot() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleHot))
}

// Lipgloss converts a raw RGB to a lipgloss color
func Lipgloss(c RGB) lipgloss.Color {
	return rgbToLipgloss(c)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
