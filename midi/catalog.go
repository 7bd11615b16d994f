package midi

import (
	"fmt"
	"time"

	"velocity-monitor/debug"
)

// DefaultQueryTimeout bounds a registry query (CoreMIDI can hang)
const DefaultQueryTimeout = 3 * time.Second

// Catalog enumerates devices and their capabilities
type Catalog struct {
	registry Registry
	timeout  time.Duration
}

// NewCatalog creates a catalog over a registry
func NewCatalog(r Registry) *Catalog {
	return &Catalog{
		registry: r,
		timeout:  DefaultQueryTimeout,
	}
}

// SetTimeout changes how long Enumerate waits for the registry
func (c *Catalog) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Enumerate queries the registry once and returns one descriptor per device
// name: devices with input ports first, in registry order, then output-only
// devices. Capabilities come from probing each port.
//
// On failure the error wraps ErrDeviceQuery and no devices are returned.
func (c *Catalog) Enumerate() ([]DeviceDescriptor, error) {
	ins, outs, err := c.query()
	if err != nil {
		debug.Log("catalog", "query failed: %v", err)
		return nil, err
	}

	var devices []DeviceDescriptor
	byName := make(map[string]int)
	lookup := func(name string) *DeviceDescriptor {
		i, ok := byName[name]
		if !ok {
			i = len(devices)
			byName[name] = i
			devices = append(devices, DeviceDescriptor{Name: name, Index: i})
		}
		return &devices[i]
	}

	for _, p := range ins {
		d := lookup(p.String())
		if probe(p) {
			d.CanTransmit = true
		}
	}
	for _, p := range outs {
		d := lookup(p.String())
		if probe(p) {
			d.CanReceive = true
		}
	}

	debug.Log("catalog", "enumerated %d devices (%d in ports, %d out ports)", len(devices), len(ins), len(outs))
	return devices, nil
}

func (c *Catalog) query() (ins, outs []Port, err error) {
	type result struct {
		ins  []Port
		outs []Port
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		ins, err := c.registry.Ins()
		if err != nil {
			ch <- result{err: err}
			return
		}
		outs, err := c.registry.Outs()
		ch <- result{ins: ins, outs: outs, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrDeviceQuery, r.err)
		}
		return r.ins, r.outs, nil
	case <-time.After(c.timeout):
		return nil, nil, fmt.Errorf("%w: no answer within %s", ErrDeviceQuery, c.timeout)
	}
}

// probe opens a port to confirm it is usable and releases it straight away.
// A port someone else already holds open counts as usable and is left alone.
func probe(p Port) bool {
	if p.IsOpen() {
		return true
	}
	if err := p.Open(); err != nil {
		debug.Log("catalog", "probe %q: %v", p.String(), err)
		return false
	}
	if err := p.Close(); err != nil {
		debug.Log("catalog", "release %q: %v", p.String(), err)
	}
	return true
}
