package application

import (
	"sync"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

var log = logger.GetLogger()

// Engine orchestrates invoice creation, bid submission, manual finalization and the expiry sweep.
// a single mutex serializes every entry point, so a sweep can never interleave with a bid or a
// manual finalize on the same invoice, and every call is an atomic read-modify-write over the
// invoice store and the wallet ledger
type Engine struct {
	mu       sync.Mutex
	invoices domain.InvoiceRepository
	ledger   domain.WalletLedger
	notifier domain.Notifier
	clock    clockwork.Clock
	spread   decimal.Decimal
	seq      uint64 // last emitted event sequence, guarded by mu
}

// EngineOption customizes an Engine
type EngineOption func(*Engine)

// WithBidSpread overrides the distance bids must keep below the face amount
func WithBidSpread(spread decimal.Decimal) EngineOption {
	return func(e *Engine) { e.spread = spread }
}

// WithNotifier sets the events receiver, events are discarded without one
func WithNotifier(n domain.Notifier) EngineOption {
	return func(e *Engine) { e.notifier = n }
}

// NewEngine creates a new Engine, it receives dependency through injection
func NewEngine(invoices domain.InvoiceRepository, ledger domain.WalletLedger, clock clockwork.Clock, opts ...EngineOption) *Engine {
	e := &Engine{
		invoices: invoices,
		ledger:   ledger,
		clock:    clock,
		spread:   domain.DefaultBidSpread,
		notifier: domain.NotifierFunc(func(domain.Event) {}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// emit stamps and forwards an event, must be called with mu held so Seq follows mutation order
func (e *Engine) emit(ev domain.Event) {
	e.seq++
	ev.Seq = e.seq
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = e.clock.Now()
	}
	e.notifier.Notify(ev)
}

func copyBid(b *domain.Bid) *domain.Bid {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}
