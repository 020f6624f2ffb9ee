package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid represents individual bid on an invoice.
// is also an entity inside Invoice aggregate, immutable once created
type Bid struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID int64           `json:"invoice_id"`
	BidderID  string          `json:"bidder_id"` // user who makes the bid
	Amount    decimal.Decimal `json:"amount"`
	PlacedAt  time.Time       `json:"placed_at"`
}

// NewBid creates a new Bid instance
func NewBid(id uuid.UUID, invoiceID int64, bidderID string, amount decimal.Decimal, placedAt time.Time) *Bid {
	return &Bid{
		ID:        id,
		InvoiceID: invoiceID,
		BidderID:  bidderID,
		Amount:    amount,
		PlacedAt:  placedAt,
	}
}
