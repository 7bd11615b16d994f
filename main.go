package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"velocity-monitor/config"
	"velocity-monitor/debug"
	"velocity-monitor/midi"
	"velocity-monitor/render"
	"velocity-monitor/theme"
	"velocity-monitor/tui"
	"velocity-monitor/velocity"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := remedy(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(exitCode(err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Debug {
		if path, err := config.DebugLogPath(); err == nil {
			if err := debug.Enable(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
			}
		}
		defer debug.Disable()
	}

	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}

	reg, devices := enumerate()
	if reg != nil {
		defer reg.Close()
	}

	for _, d := range midi.Inputs(devices) {
		fmt.Printf("MIDI IN device %s\n", d)
	}

	dev, err := midi.Select(devices)
	if err != nil {
		return err
	}

	table := velocity.NewTable()
	ingest := midi.NewIngest(table)

	binding, err := reg.Bind(dev, ingest)
	if err != nil {
		return err
	}
	defer binding.Close()
	fmt.Printf("Opened %s\n", dev)
	debug.L().Named("startup").Info("bound input",
		zap.String("device", dev.Name),
		zap.Int("index", dev.Index),
		zap.Duration("frameInterval", cfg.FrameInterval()))

	colors := render.DefaultColors
	if th.Gradient {
		colors.Gradient = th.Palette
	}
	src := &render.Source{Table: table, Geometry: cfg.RenderGeometry(), Colors: colors}

	m := tui.NewModel(src, th, tui.Options{
		Device:   dev.Name,
		Snapshot: table.Snapshot,
		Stats:    ingest.Stats,
		OnClear:  table.Reset,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	loop := render.NewLoop(cfg.FrameInterval(), func() {
		p.Send(tui.FrameMsg{})
	})
	loop.Start()
	defer loop.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	fmt.Println("good bye")
	return nil
}

// enumerate opens the platform driver and lists its devices. A registry
// failure is reported and treated as an empty catalog.
func enumerate() (*midi.DriverRegistry, []midi.DeviceDescriptor) {
	reg, err := midi.OpenDriver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil, nil
	}

	devices, err := midi.NewCatalog(reg).Enumerate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return reg, nil
	}
	return reg, devices
}

func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	palette := theme.Default()
	if cfg.Palette != "" {
		p, err := theme.LoadGPL(cfg.Palette)
		if err != nil {
			return nil, fmt.Errorf("load palette: %w", err)
		}
		palette = p
	}
	th := theme.New(palette)
	th.Gradient = cfg.Gradient
	return th, nil
}

// Exit codes
const (
	exitFailure   = 1
	exitNoInput   = 2
	exitOpenInput = 3
)

func exitCode(err error) int {
	switch {
	case errors.Is(err, midi.ErrNoInputDevice):
		return exitNoInput
	case errors.Is(err, midi.ErrDeviceOpen):
		return exitOpenInput
	}
	return exitFailure
}

func remedy(err error) string {
	switch {
	case errors.Is(err, midi.ErrNoInputDevice):
		return "Connect a MIDI keyboard (or check its driver) and start again."
	case errors.Is(err, midi.ErrDeviceOpen):
		return "Check the device is not held by another program and that you may open it."
	}
	return ""
}
