package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"velocity-monitor/render"
)

// AppName names the config directory
const AppName = "velocity-monitor"

// GeometryConfig overrides the chart geometry (drawing units)
type GeometryConfig struct {
	Left   int `json:"left,omitempty"`
	Top    int `json:"top,omitempty"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	FrameIntervalMS int            `json:"frameIntervalMs,omitempty"`
	Palette         string         `json:"palette,omitempty"`  // GPL file, empty = built-in
	Gradient        bool           `json:"gradient,omitempty"` // colour bars by velocity
	Debug           bool           `json:"debug,omitempty"`    // write debug.log
	Geometry        GeometryConfig `json:"geometry,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	g := render.DefaultGeometry
	return &Config{
		FrameIntervalMS: int(render.DefaultInterval / time.Millisecond),
		Geometry: GeometryConfig{
			Left:   g.Left,
			Top:    g.Top,
			Width:  g.Width,
			Height: g.Height,
		},
	}
}

// FrameInterval returns the redraw interval, falling back to the default
func (c *Config) FrameInterval() time.Duration {
	if c.FrameIntervalMS <= 0 {
		return render.DefaultInterval
	}
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// RenderGeometry returns the chart geometry. A width or height too small
// to give every key and velocity step one unit falls back to the default.
func (c *Config) RenderGeometry() render.Geometry {
	g := render.Geometry{
		Left:   c.Geometry.Left,
		Top:    c.Geometry.Top,
		Width:  c.Geometry.Width,
		Height: c.Geometry.Height,
	}
	if g.KeyWidth() < 1 || g.UnitHeight() < 1 {
		return render.DefaultGeometry
	}
	return g
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DebugLogPath returns the full path to debug.log
func DebugLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file. Missing fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
