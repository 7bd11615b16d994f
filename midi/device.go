package midi

import (
	"errors"
	"fmt"
)

// Startup failures. Each needs a different fix, so callers should tell
// them apart with errors.Is.
var (
	// ErrDeviceQuery means the platform registry could not be listed.
	// Treat it as an empty catalog.
	ErrDeviceQuery = errors.New("MIDI device registry unavailable")
	// ErrNoInputDevice means nothing in the catalog can transmit
	ErrNoInputDevice = errors.New("no MIDI input device found")
	// ErrDeviceOpen means the selected device could not be bound
	ErrDeviceOpen = errors.New("cannot open MIDI input device")
)

// DeviceDescriptor describes one entry of an enumeration pass
type DeviceDescriptor struct {
	Name        string
	Index       int  // position in the enumeration pass
	CanTransmit bool // produces MIDI (an input for us)
	CanReceive  bool // consumes MIDI
}

// IsInput reports whether events can be read from the device
func (d DeviceDescriptor) IsInput() bool {
	return d.CanTransmit
}

// IsOutput reports whether events can be sent to the device
func (d DeviceDescriptor) IsOutput() bool {
	return d.CanReceive
}

func (d DeviceDescriptor) String() string {
	dir := "--"
	switch {
	case d.CanTransmit && d.CanReceive:
		dir = "in/out"
	case d.CanTransmit:
		dir = "in"
	case d.CanReceive:
		dir = "out"
	}
	return fmt.Sprintf("[%d] %s (%s)", d.Index, d.Name, dir)
}

// Port is one endpoint of the platform registry.
// gomidi's drivers.In and drivers.Out both satisfy it.
type Port interface {
	Open() error
	Close() error
	IsOpen() bool
	String() string
}

// Registry lists the platform's MIDI endpoints
type Registry interface {
	Ins() ([]Port, error)
	Outs() ([]Port, error)
}
