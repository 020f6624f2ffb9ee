package application

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultSweepInterval matches the cadence invoices were always re-evaluated at
const DefaultSweepInterval = 2 * time.Second

// Sweeper runs the expiry sweep on a fixed interval, decoupled from request handling
type Sweeper struct {
	engine   Sweepable
	clock    clockwork.Clock
	interval time.Duration
	// OnSweep, if set, receives every result. used for metrics and tests
	OnSweep func(SweepResult)
}

// NewSweeper creates a Sweeper, a non positive interval falls back to DefaultSweepInterval
func NewSweeper(engine Sweepable, clock clockwork.Clock, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{engine: engine, clock: clock, interval: interval}
}

// Run sweeps on every tick until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info("Sweeper started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			log.Info("Sweeper stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.Chan():
			result := s.engine.Sweep(s.clock.Now())
			if s.OnSweep != nil {
				s.OnSweep(result)
			}
		}
	}
}
