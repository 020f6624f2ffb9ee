package notify

import (
	"context"
	"sync"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// DefaultBacklogWarning is the queue length that triggers a warning when none is configured
const DefaultBacklogWarning = 256

// Dispatcher decouples the engine from slow event sinks. Notify only appends to an unbounded
// queue, a single goroutine started with Run hands every event to each sink in the order they were
// registered, so sinks see every event in emission order
type Dispatcher struct {
	mu      sync.Mutex
	pending []domain.Event
	wake    chan struct{}
	sinks   []domain.Notifier
	// backlog size reported once per build up
	warnAt int
	warned bool
}

// NewDispatcher creates a Dispatcher that logs a warning when more than warnAt events wait for delivery
func NewDispatcher(warnAt int, sinks ...domain.Notifier) *Dispatcher {
	if warnAt <= 0 {
		warnAt = DefaultBacklogWarning
	}
	return &Dispatcher{
		wake:   make(chan struct{}, 1),
		sinks:  sinks,
		warnAt: warnAt,
	}
}

// AddSink registers another receiver, must be called before Run
func (d *Dispatcher) AddSink(sink domain.Notifier) {
	d.sinks = append(d.sinks, sink)
}

// Notify implements domain.Notifier. it never blocks and never drops
func (d *Dispatcher) Notify(ev domain.Event) {
	d.mu.Lock()
	d.pending = append(d.pending, ev)
	if len(d.pending) >= d.warnAt && !d.warned {
		d.warned = true
		log.Warn("Event backlog is growing, sinks are slower than the engine",
			zap.Int("pending", len(d.pending)),
			zap.Uint64("seq", ev.Seq),
		)
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
		// a wake up is already pending
	}
}

// Pending returns how many events wait for delivery
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Run delivers queued events until ctx is cancelled, then flushes what is already queued
func (d *Dispatcher) Run(ctx context.Context) error {
	log.Info("Event dispatcher started", zap.Int("sinks", len(d.sinks)), zap.Int("backlogWarning", d.warnAt))
	for {
		select {
		case <-ctx.Done():
			for d.flush() {
			}
			log.Info("Event dispatcher stopped due to context cancellation")
			return ctx.Err()
		case <-d.wake:
			d.flush()
		}
	}
}

// flush delivers the current backlog, it reports whether there was anything to deliver
func (d *Dispatcher) flush() bool {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.warned = false
	d.mu.Unlock()

	for _, ev := range batch {
		d.deliver(ev)
	}
	return len(batch) > 0
}

// deliver isolates sinks from each other, a panicking sink does not stop the rest
func (d *Dispatcher) deliver(ev domain.Event) {
	for i, sink := range d.sinks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Event sink panicked",
						zap.Int("sink", i),
						zap.Uint64("seq", ev.Seq),
						zap.Any("panic", r),
					)
				}
			}()
			sink.Notify(ev)
		}()
	}
}
