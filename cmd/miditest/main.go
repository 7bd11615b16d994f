package main

import (
	"fmt"
	"os"
	"os/signal"

	gomidi "gitlab.com/gomidi/midi/v2"

	"velocity-monitor/midi"
	"velocity-monitor/widgets"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = listDevices()
	case "select":
		err = selectDevice()
	case "monitor":
		err = monitor()
	default:
		usage()
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

var commands = []widgets.KeySection{{
	Title: "Commands:",
	Keys: []widgets.KeyBinding{
		{Key: "list", Desc: "List all MIDI devices with their capabilities"},
		{Key: "select", Desc: "Show which input the monitor would bind"},
		{Key: "monitor", Desc: "Bind that input and print note events"},
	},
}}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println(widgets.RenderKeyHelp(commands))
}

func catalog() (*midi.DriverRegistry, []midi.DeviceDescriptor, error) {
	fmt.Println("(waiting up to 3 seconds...)")

	reg, err := midi.OpenDriver()
	if err != nil {
		return nil, nil, err
	}
	devices, err := midi.NewCatalog(reg).Enumerate()
	if err != nil {
		reg.Close()
		return nil, nil, err
	}
	return reg, devices, nil
}

func listDevices() error {
	reg, devices, err := catalog()
	if err != nil {
		return err
	}
	defer reg.Close()

	fmt.Printf("=== MIDI Devices (%s) ===\n", reg)
	if len(devices) == 0 {
		fmt.Println("  none")
	}
	for _, d := range devices {
		fmt.Printf("  %s\n", d)
	}
	return nil
}

func selectDevice() error {
	reg, devices, err := catalog()
	if err != nil {
		return err
	}
	defer reg.Close()

	inputs := midi.Inputs(devices)
	fmt.Println("=== MIDI Inputs ===")
	for _, d := range inputs {
		fmt.Printf("  %s\n", d)
	}

	d, err := midi.Select(devices)
	if err != nil {
		return err
	}
	fmt.Printf("\nSelected: %s\n", d)
	return nil
}

// printSink forwards note messages to the printing goroutine without
// blocking the driver
type printSink struct {
	events chan gomidi.Message
}

func (p *printSink) Receive(msg gomidi.Message, timestampms int32) {
	select {
	case p.events <- msg:
	default:
	}
}

func monitor() error {
	reg, devices, err := catalog()
	if err != nil {
		return err
	}
	defer reg.Close()

	d, err := midi.Select(devices)
	if err != nil {
		return err
	}

	sink := &printSink{events: make(chan gomidi.Message, 64)}
	b, err := reg.Bind(d, sink)
	if err != nil {
		return err
	}
	defer b.Close()

	fmt.Printf("Listening on %s. Ctrl+C to exit.\n", d)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	for {
		select {
		case msg := <-sink.events:
			var channel, key, vel uint8
			switch {
			case msg.GetNoteOn(&channel, &key, &vel):
				fmt.Printf("  on   ch%-2d %-4s vel %3d\n", channel+1, widgets.NoteName(int(key)), vel)
			case msg.GetNoteOff(&channel, &key, &vel):
				fmt.Printf("  off  ch%-2d %-4s\n", channel+1, widgets.NoteName(int(key)))
			default:
				fmt.Printf("  %s\n", msg)
			}
		case <-stop:
			fmt.Println("\ngood bye")
			return nil
		}
	}
}
