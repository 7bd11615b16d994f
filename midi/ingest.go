package midi

import (
	"sync/atomic"

	gomidi "gitlab.com/gomidi/midi/v2"

	"velocity-monitor/velocity"
)

// MessageSink receives raw messages from a bound input, on whatever
// goroutine the driver delivers them
type MessageSink interface {
	Receive(msg gomidi.Message, timestampms int32)
}

// Stats counts what an Ingest has seen
type Stats struct {
	Notes   uint64 // note on/off applied to the table
	Ignored uint64 // everything else
}

// Ingest turns note on/off messages into velocity table updates.
// Receive never blocks: no locks, no channels, no logging.
type Ingest struct {
	table   *velocity.Table
	notes   atomic.Uint64
	ignored atomic.Uint64
}

// NewIngest creates an ingest writing into table
func NewIngest(table *velocity.Table) *Ingest {
	return &Ingest{table: table}
}

// Receive implements MessageSink.
//
// Note on stores its velocity, so note on with velocity 0 releases the key.
// Note off always releases the key, whatever velocity it carries.
// Other messages, and note messages with a data byte above 127, are ignored.
func (in *Ingest) Receive(msg gomidi.Message, timestampms int32) {
	var channel, key, vel uint8

	switch {
	case len(msg) < 3, msg[1] > 0x7f, msg[2] > 0x7f:
		in.ignored.Add(1)
	case msg.GetNoteOn(&channel, &key, &vel):
		in.table.Set(int(key), int(vel))
		in.notes.Add(1)
	case msg.GetNoteOff(&channel, &key, &vel):
		in.table.Set(int(key), 0)
		in.notes.Add(1)
	default:
		in.ignored.Add(1)
	}
}

// Stats returns the message counters
func (in *Ingest) Stats() Stats {
	return Stats{
		Notes:   in.notes.Load(),
		Ignored: in.ignored.Load(),
	}
}
