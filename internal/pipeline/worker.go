package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	// ErrBusy reports that a run is already in flight.
	ErrBusy = errors.New("a fetch is already in progress")
	// ErrClosed reports a submit after Close.
	ErrClosed = errors.New("dispatcher is closed")
)

// Event is the completion message a run delivers back to the presenter.
// Request identifies the run even when it failed and Result is nil.
type Event struct {
	Request Request
	Result  *Result
	Err     error
}

// Dispatcher owns the one background worker all ingestion runs on. At most
// one run is in flight; a Submit during a run returns ErrBusy instead of
// queueing. Completion events arrive on Events.
type Dispatcher struct {
	pipeline *Pipeline
	requests chan job
	events   chan Event
	done     chan struct{}
	busy     atomic.Bool
}

type job struct {
	apiKey string
	req    Request
}

func NewDispatcher(p *Pipeline) *Dispatcher {
	d := &Dispatcher{
		pipeline: p,
		requests: make(chan job, 1),
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}
	go d.loop()
	return d
}

// Events delivers exactly one event per accepted Submit.
func (d *Dispatcher) Events() <-chan Event { return d.events }

// Busy reports whether a run is in flight.
func (d *Dispatcher) Busy() bool { return d.busy.Load() }

// Submit hands one run to the worker. The run has no mid-flight abort; it
// either completes or fails on its own.
func (d *Dispatcher) Submit(apiKey string, req Request) error {
	select {
	case <-d.done:
		return ErrClosed
	default:
	}
	if !d.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	d.requests <- job{apiKey: apiKey, req: req}
	return nil
}

// Close stops the worker. A run still in flight finishes but its event may
// be dropped.
func (d *Dispatcher) Close() {
	close(d.done)
}

func (d *Dispatcher) loop() {
	for {
		select {
		case j := <-d.requests:
			result, err := d.pipeline.Run(context.Background(), j.apiKey, j.req)
			select {
			case d.events <- Event{Request: j.req, Result: result, Err: err}:
			case <-d.done:
				d.busy.Store(false)
				return
			}
			d.busy.Store(false)
		case <-d.done:
			return
		}
	}
}
