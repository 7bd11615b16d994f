package theme

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type RGB [3]uint8

type Palette struct {
	Name   string
	Colors []RGB
}

//go:embed palettes/keys.gpl
var defaultGPL string

// Default returns the built-in palette
func Default() *Palette {
	p, err := ParseGPL(strings.NewReader(defaultGPL))
	if err != nil {
		panic(fmt.Sprintf("built-in palette: %v", err))
	}
	return p
}

func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ParseGPL(f)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// ParseGPL reads a GIMP palette. Header lines ("GIMP Palette", "Name:",
// "Columns:") and comments are skipped; every other line must start with
// three integer channels, optionally followed by a colour name.
func ParseGPL(r io.Reader) (*Palette, error) {
	p := &Palette{}
	scanner := bufio.NewScanner(r)

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "", line[0] == '#', strings.HasPrefix(line, "GIMP"), strings.HasPrefix(line, "Columns:"):
			continue
		case strings.HasPrefix(line, "Name:"):
			p.Name = strings.TrimSpace(line[len("Name:"):])
			continue
		}

		c, err := parseRGB(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		p.Colors = append(p.Colors, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colors found")
	}
	return p, nil
}

func parseRGB(fields []string) (RGB, error) {
	if len(fields) < 3 {
		return RGB{}, fmt.Errorf("want 3 channels, got %d", len(fields))
	}
	var c RGB
	for i := range c {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return RGB{}, fmt.Errorf("channel %d: %w", i, err)
		}
		c[i] = channel(v)
	}
	return c, nil
}

// Lookup returns interpolated color for normalized value 0-1.
// Neighbouring entries are blended in Lab space so gradients stay even.
func (p *Palette) Lookup(norm float64) RGB {
	if norm <= 0 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[len(p.Colors)-1]
	}

	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	frac := pos - float64(i)

	c0 := p.Colors[i].colorful()
	c1 := p.Colors[i+1].colorful()
	r, g, b := c0.BlendLab(c1, frac).Clamped().RGB255()
	return RGB{r, g, b}
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
