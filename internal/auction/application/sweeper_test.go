package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestSweeper_RunSweepsOnEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := clockwork.NewFakeClockAt(start)
	engine := NewMockSweepable(ctrl)

	swept := make(chan time.Time, 4)
	engine.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(now time.Time) SweepResult {
		swept <- now
		return SweepResult{At: now}
	}).Times(2)

	sweeper := NewSweeper(engine, clock, time.Second)
	results := make(chan SweepResult, 4)
	sweeper.OnSweep = func(r SweepResult) { results <- r }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	clock.BlockUntil(1)
	for i := 1; i <= 2; i++ {
		clock.Advance(time.Second)
		select {
		case at := <-swept:
			require.Equal(t, start.Add(time.Duration(i)*time.Second), at)
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d did not trigger a sweep", i)
		}
		require.Equal(t, start.Add(time.Duration(i)*time.Second), (<-results).At)
	}

	cancel()
	require.True(t, errors.Is(<-done, context.Canceled))
}

func TestSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewSweeper(nil, clockwork.NewFakeClock(), 0)
	require.Equal(t, DefaultSweepInterval, sweeper.interval)
}

func TestSweeper_ResolvesExpiredInvoices(t *testing.T) {
	f := newFixture(t)
	f.fund(t, "A", 500)
	inv := f.invoice(t, 200, 500*time.Millisecond, true, 0)
	f.bid(t, inv.ID, "A", 100)

	sweeper := NewSweeper(f.engine, f.clock, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sweeper.Run(ctx) }()

	f.clock.BlockUntil(1)
	f.clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		got, err := f.engine.GetInvoice(inv.ID)
		return err == nil && got.IsFinalized()
	}, 2*time.Second, 10*time.Millisecond)
}
