package midi

import (
	"fmt"
	"strings"
)

// ReservedPrefix marks software/virtual devices that are skipped when a
// hardware input is available
const ReservedPrefix = "Java"

// Inputs returns the input-capable devices in enumeration order
func Inputs(devices []DeviceDescriptor) []DeviceDescriptor {
	var inputs []DeviceDescriptor
	for _, d := range devices {
		if d.IsInput() {
			inputs = append(inputs, d)
		}
	}
	return inputs
}

// Select picks the input to bind: the first input whose name does not start
// with ReservedPrefix, otherwise the first input. The result only depends on
// the order of devices.
func Select(devices []DeviceDescriptor) (DeviceDescriptor, error) {
	inputs := Inputs(devices)
	if len(inputs) == 0 {
		return DeviceDescriptor{}, fmt.Errorf("%w (%d devices enumerated)", ErrNoInputDevice, len(devices))
	}

	for _, d := range inputs {
		if !strings.HasPrefix(d.Name, ReservedPrefix) {
			return d, nil
		}
	}
	return inputs[0], nil
}
