package render

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the redraw cadence
const DefaultInterval = 50 * time.Millisecond

// State of a Loop
type State int32

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Loop requests a redraw at a fixed interval, independent of MIDI traffic.
// Several note changes between two frames simply show up together.
type Loop struct {
	interval time.Duration
	redraw   func()

	state    atomic.Int32
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates an idle loop calling redraw every interval
func NewLoop(interval time.Duration, redraw func()) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		redraw:   redraw,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Interval returns the redraw cadence
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// State returns the current state
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Start moves Idle -> Running and starts the loop goroutine.
// It does nothing in any other state.
func (l *Loop) Start() {
	if !l.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return
	}
	go l.run()
}

// Stop moves the loop to Stopped. The goroutine exits at its next wait and
// never redraws after observing the stop. Safe to call in any state.
func (l *Loop) Stop() {
	prev := State(l.state.Swap(int32(Stopped)))
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if prev == Idle {
			close(l.done) // no goroutine to do it
		}
	})
}

// Done is closed once the loop goroutine has exited
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run() {
	defer close(l.done)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		l.redraw()

		timer.Reset(l.interval)
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		if l.State() != Running {
			return
		}
	}
}
