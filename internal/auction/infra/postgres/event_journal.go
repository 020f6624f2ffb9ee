package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

const insertEventQuery = `
        INSERT INTO auction_events
            (run_id, seq, type, invoice_id, owner_id, bidder_id, amount, bid_id, winning_bid_id, reason, reason_code, payload, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (run_id, seq) DO NOTHING
    `

// Execer is satisfied by *pgxpool.Pool and pgx.Tx
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EventJournal appends every engine event to the auction_events table. it is write only, the
// engine never reads it back. Event sequence numbers start over with every process, so rows are
// keyed by (runID, seq)
type EventJournal struct {
	db      Execer
	runID   uuid.UUID
	timeout time.Duration
}

// NewEventJournal creates an EventJournal for the process identified by runID, each insert is
// bounded by timeout
func NewEventJournal(db Execer, runID uuid.UUID, timeout time.Duration) *EventJournal {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &EventJournal{db: db, runID: runID, timeout: timeout}
}

// Notify implements domain.Notifier. it runs on the dispatcher goroutine, never under the engine lock
func (j *EventJournal) Notify(ev domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.Append(ctx, ev); err != nil {
		log.Error("EventJournal: failed to append event",
			zap.Uint64("seq", ev.Seq),
			zap.String("type", string(ev.Type)),
			zap.Int64("invoiceID", ev.InvoiceID),
			zap.Error(err),
		)
	}
}

// Append inserts one event, replaying an event of the same run is a no-op
func (j *EventJournal) Append(ctx context.Context, ev domain.Event) error {
	row, err := newEventRow(j.runID, ev)
	if err != nil {
		return err
	}
	if _, err := j.db.Exec(ctx, insertEventQuery, row.args()...); err != nil {
		return fmt.Errorf("insert event %d: %w", ev.Seq, err)
	}
	return nil
}

// eventRow is the column mapping of an event, optional columns are nil pointers
type eventRow struct {
	RunID        uuid.UUID
	Seq          int64
	Type         string
	InvoiceID    int64
	OwnerID      *string
	BidderID     *string
	Amount       *decimal.Decimal
	BidID        *uuid.UUID
	WinningBidID *uuid.UUID
	Reason       *string
	ReasonCode   *string
	Payload      []byte
	OccurredAt   time.Time
}

func newEventRow(runID uuid.UUID, ev domain.Event) (eventRow, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return eventRow{}, fmt.Errorf("marshal event %d: %w", ev.Seq, err)
	}
	row := eventRow{
		RunID:      runID,
		Seq:        int64(ev.Seq),
		Type:       string(ev.Type),
		InvoiceID:  ev.InvoiceID,
		OwnerID:    optional(ev.OwnerID),
		BidderID:   optional(ev.BidderID),
		Reason:     optional(ev.Reason),
		ReasonCode: optional(ev.ReasonCode),
		Payload:    payload,
		OccurredAt: ev.OccurredAt.UTC(),
	}
	if !ev.Amount.IsZero() {
		amount := ev.Amount
		row.Amount = &amount
	}
	if ev.Bid != nil {
		id := ev.Bid.ID
		row.BidID = &id
	}
	if ev.WinningBid != nil {
		id := ev.WinningBid.ID
		row.WinningBidID = &id
	}
	return row, nil
}

func (r eventRow) args() []any {
	return []any{
		r.RunID, r.Seq, r.Type, r.InvoiceID, r.OwnerID, r.BidderID, r.Amount,
		r.BidID, r.WinningBidID, r.Reason, r.ReasonCode, r.Payload, r.OccurredAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
