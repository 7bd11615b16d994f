package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"velocity-monitor/velocity"
)

// NoteName converts a MIDI note to a readable name (e.g. "C4", "F#3")
func NoteName(note int) string {
	names := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	if note < 0 || note >= velocity.NumKeys {
		return "--"
	}
	octave := note/12 - 1
	return fmt.Sprintf("%s%d", names[note%12], octave)
}

// IsBlackKey reports whether a note falls on a black piano key
func IsBlackKey(note int) bool {
	switch note % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// RenderRuler draws a marker row under the chart, width cells wide, spanning
// the playable range. Every C gets octave, white keys get tick.
func RenderRuler(width int, octave, tick rune, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	cells := []rune(strings.Repeat(" ", width))
	for key := velocity.LowestKey; key <= velocity.HighestKey; key++ {
		col := (key - velocity.LowestKey) * width / velocity.PianoKeys
		switch {
		case key%12 == 0:
			cells[col] = octave
		case !IsBlackKey(key) && cells[col] == ' ':
			cells[col] = tick
		}
	}
	return style.Render(string(cells))
}

// RenderOctaveLabels places "C1".."C8" under the ruler's octave marks
func RenderOctaveLabels(width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	cells := []rune(strings.Repeat(" ", width))
	for key := velocity.LowestKey; key <= velocity.HighestKey; key++ {
		if key%12 != 0 {
			continue
		}
		col := (key - velocity.LowestKey) * width / velocity.PianoKeys
		for i, r := range NoteName(key) {
			if col+i < width {
				cells[col+i] = r
			}
		}
	}
	return style.Render(string(cells))
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderKeyLine formats key bindings on a single line ("q:quit  c:clear")
func RenderKeyLine(keys []KeyBinding) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.Key + ":" + k.Desc
	}
	return strings.Join(parts, "  ")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
