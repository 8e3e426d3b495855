package audit

import (
	"context"
	"log"
	"sync"
	"time"
)

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
	At       time.Time
}

// Sink receives every dispatched event on the dispatcher's worker goroutine.
type Sink interface {
	Handle(ctx context.Context, ev Event) error
}

type SinkFunc func(ctx context.Context, ev Event) error

func (f SinkFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, sink := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := sink.Handle(ctx, ev); err != nil {
				log.Printf("[Audit] sink error on %s: %v", ev.Action, err)
			}
			cancel()
		}
	}
}

// Dispatch queues ev without blocking. A full queue drops the event; the
// request that produced it never fails because of auditing.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Printf("[Audit] queue full, dropping %s", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be handled.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
