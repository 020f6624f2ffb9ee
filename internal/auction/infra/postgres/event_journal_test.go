package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	sql  []string
	args [][]any
	err  error
}

func (r *recordingExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), r.err
}

func TestNewEventRow_FinalizedEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CLT", -3*3600))
	winner := &domain.Bid{ID: uuid.New(), InvoiceID: 5, BidderID: "alice", Amount: decimal.NewFromInt(160), PlacedAt: at}

	runID := uuid.New()
	row, err := newEventRow(runID, domain.Event{
		Seq:        9,
		Type:       domain.EventInvoiceFinalized,
		InvoiceID:  5,
		OwnerID:    "megacorp",
		BidderID:   "alice",
		Amount:     winner.Amount,
		WinningBid: winner,
		OccurredAt: at,
	})
	require.NoError(t, err)

	require.Equal(t, runID, row.RunID)
	require.Equal(t, int64(9), row.Seq)
	require.Equal(t, "invoice_finalized", row.Type)
	require.Equal(t, "megacorp", *row.OwnerID)
	require.Equal(t, "alice", *row.BidderID)
	require.True(t, decimal.NewFromInt(160).Equal(*row.Amount))
	require.Nil(t, row.BidID)
	require.Equal(t, winner.ID, *row.WinningBidID)
	require.Nil(t, row.Reason)
	require.Equal(t, time.UTC, row.OccurredAt.Location())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(row.Payload, &payload))
	require.Equal(t, "invoice_finalized", payload["type"])
	require.Len(t, row.args(), 13)
	require.Equal(t, runID, row.args()[0])
}

func TestNewEventRow_NoSaleLeavesOptionalColumnsNull(t *testing.T) {
	row, err := newEventRow(uuid.New(), domain.Event{Seq: 3, Type: domain.EventAuctionExpiredNoSale, InvoiceID: 2, Reason: "no bids"})
	require.NoError(t, err)

	require.Nil(t, row.OwnerID)
	require.Nil(t, row.BidderID)
	require.Nil(t, row.Amount)
	require.Nil(t, row.WinningBidID)
	require.Equal(t, "no bids", *row.Reason)
}

func TestEventJournal_Append(t *testing.T) {
	db := &recordingExecer{}
	runID := uuid.New()
	journal := NewEventJournal(db, runID, time.Second)

	bid := &domain.Bid{ID: uuid.New(), InvoiceID: 1, BidderID: "bob", Amount: decimal.NewFromInt(80)}
	require.NoError(t, journal.Append(context.Background(), domain.Event{
		Seq: 2, Type: domain.EventBidAccepted, InvoiceID: 1, BidderID: "bob", Amount: bid.Amount, Bid: bid,
	}))

	require.Len(t, db.sql, 1)
	require.Contains(t, db.sql[0], "INSERT INTO auction_events")
	require.Contains(t, db.sql[0], "ON CONFLICT (run_id, seq)")
	require.Equal(t, runID, db.args[0][0])
	require.Equal(t, int64(2), db.args[0][1])
	require.Equal(t, &bid.ID, db.args[0][7])
}

func TestEventJournal_NotifySwallowsErrors(t *testing.T) {
	db := &recordingExecer{err: errors.New("connection refused")}
	journal := NewEventJournal(db, uuid.New(), 0)

	require.NotPanics(t, func() {
		journal.Notify(domain.Event{Seq: 1, Type: domain.EventInvoiceCreated, InvoiceID: 1})
	})
	require.Len(t, db.sql, 1)
}

func TestEventJournal_RestartedProcessesDoNotCollide(t *testing.T) {
	db := &recordingExecer{}
	first := NewEventJournal(db, uuid.New(), time.Second)
	second := NewEventJournal(db, uuid.New(), time.Second)

	ev := domain.Event{Seq: 1, Type: domain.EventInvoiceCreated, InvoiceID: 1}
	require.NoError(t, first.Append(context.Background(), ev))
	require.NoError(t, second.Append(context.Background(), ev))

	require.Len(t, db.args, 2)
	require.Equal(t, db.args[0][1], db.args[1][1], "both runs start their sequence at 1")
	require.NotEqual(t, db.args[0][0], db.args[1][0])
}
