package midi

import (
	"fmt"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"velocity-monitor/debug"
)

// DriverRegistry exposes a gomidi driver as a Registry and binds inputs
type DriverRegistry struct {
	drv drivers.Driver
}

// OpenDriver starts the rtmidi driver. Call Close when done.
func OpenDriver() (*DriverRegistry, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("%w: rtmidi: %w", ErrDeviceQuery, err)
	}
	return NewDriverRegistry(drv), nil
}

// NewDriverRegistry wraps an already started driver
func NewDriverRegistry(drv drivers.Driver) *DriverRegistry {
	return &DriverRegistry{drv: drv}
}

func (r *DriverRegistry) String() string {
	return r.drv.String()
}

// Ins implements Registry
func (r *DriverRegistry) Ins() ([]Port, error) {
	ins, err := r.drv.Ins()
	if err != nil {
		return nil, err
	}
	ports := make([]Port, len(ins))
	for i, in := range ins {
		ports[i] = in
	}
	return ports, nil
}

// Outs implements Registry
func (r *DriverRegistry) Outs() ([]Port, error) {
	outs, err := r.drv.Outs()
	if err != nil {
		return nil, err
	}
	ports := make([]Port, len(outs))
	for i, out := range outs {
		ports[i] = out
	}
	return ports, nil
}

// Close releases the driver
func (r *DriverRegistry) Close() error {
	return r.drv.Close()
}

// Bind opens the input port named by d and delivers its messages to sink.
// Errors wrap ErrDeviceOpen.
func (r *DriverRegistry) Bind(d DeviceDescriptor, sink MessageSink) (*Binding, error) {
	in, err := r.inPort(d.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDeviceOpen, d.Name, err)
	}

	stop, err := gomidi.ListenTo(in, sink.Receive)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDeviceOpen, d.Name, err)
	}

	debug.Log("bind", "opened %s", d)
	return &Binding{Device: d, port: in, stop: stop}, nil
}

func (r *DriverRegistry) inPort(name string) (drivers.In, error) {
	ins, err := r.drv.Ins()
	if err != nil {
		return nil, err
	}
	for _, in := range ins {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input port not found")
}

// Binding is a live connection from an input device to a sink
type Binding struct {
	Device DeviceDescriptor

	port Port
	stop func()
	once sync.Once
}

// Close stops delivery and releases the port. Safe to call more than once.
func (b *Binding) Close() error {
	var err error
	b.once.Do(func() {
		if b.stop != nil {
			b.stop()
		}
		if b.port != nil && b.port.IsOpen() {
			err = b.port.Close()
		}
		debug.Log("bind", "closed %s", b.Device)
	})
	return err
}
