package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type collector struct {
	mu   sync.Mutex
	seqs []uint64
}

func (c *collector) Notify(ev domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seqs = append(c.seqs, ev.Seq)
}

func (c *collector) snapshot() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint64(nil), c.seqs...)
}

func TestDispatcher_DeliversInOrderToEverySink(t *testing.T) {
	first, second := &collector{}, &collector{}
	d := NewDispatcher(64, first)
	d.AddSink(second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	for i := uint64(1); i <= 50; i++ {
		d.Notify(domain.Event{Seq: i, Type: domain.EventBidAccepted})
	}

	require.Eventually(t, func() bool {
		return len(first.snapshot()) == 50 && len(second.snapshot()) == 50
	}, 2*time.Second, 5*time.Millisecond)

	for i, seq := range first.snapshot() {
		require.Equal(t, uint64(i+1), seq)
	}
	require.Equal(t, first.snapshot(), second.snapshot())

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestDispatcher_BacklogIsNeverDropped(t *testing.T) {
	sink := &collector{}
	d := NewDispatcher(2, sink)

	// nobody is running the dispatcher yet, a sweep resolving many invoices must not block nor lose events
	const total = 10_000
	for i := uint64(1); i <= total; i++ {
		d.Notify(domain.Event{Seq: i, Type: domain.EventInvoiceFinalized})
	}
	require.Equal(t, total, d.Pending())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return len(sink.snapshot()) == total }, 5*time.Second, 10*time.Millisecond)
	for i, seq := range sink.snapshot() {
		require.Equal(t, uint64(i+1), seq)
	}
	require.Zero(t, d.Pending())

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestDispatcher_SlowSinkDoesNotLoseEvents(t *testing.T) {
	sink := &collector{}
	slow := domain.NotifierFunc(func(domain.Event) { time.Sleep(time.Millisecond) })
	d := NewDispatcher(4, slow, sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	for i := uint64(1); i <= 200; i++ {
		d.Notify(domain.Event{Seq: i})
	}
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	got := sink.snapshot()
	require.Len(t, got, 200)
	for i, seq := range got {
		require.Equal(t, uint64(i+1), seq)
	}
}

func TestDispatcher_FlushesQueueOnShutdown(t *testing.T) {
	sink := &collector{}
	d := NewDispatcher(8, sink)
	for i := uint64(1); i <= 5; i++ {
		d.Notify(domain.Event{Seq: i})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, d.Run(ctx), context.Canceled)
	require.Equal(t, []uint64{1, 2, 3, 4, 5}, sink.snapshot())
}

func TestDispatcher_PanickingSinkIsIsolated(t *testing.T) {
	sink := &collector{}
	d := NewDispatcher(8, domain.NotifierFunc(func(domain.Event) { panic("boom") }), sink)
	d.Notify(domain.Event{Seq: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = d.Run(ctx)
	require.Equal(t, []uint64{1}, sink.snapshot())
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	n.Notify(domain.Event{Seq: 1, Type: domain.EventInvoiceCreated, InvoiceID: 7})
	n.Notify(domain.Event{Seq: 2, Type: domain.EventBidRejected, InvoiceID: 7, BidderID: "A", ReasonCode: "bid_too_high"})

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, "bid_too_high", entries[1].ContextMap()["reasonCode"])
	require.Equal(t, int64(7), entries[0].ContextMap()["invoiceID"])
}
