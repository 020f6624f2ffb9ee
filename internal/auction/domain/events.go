package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names what happened to an invoice
type EventType string

const (
	EventInvoiceCreated       EventType = "invoice_created"
	EventBidAccepted          EventType = "bid_accepted"
	EventBidRejected          EventType = "bid_rejected"
	EventInvoiceFinalized     EventType = "invoice_finalized"
	EventAuctionExpiredNoSale EventType = "auction_expired_no_sale"
	EventBiddingEnded         EventType = "bidding_ended"
)

// Event is a plain data record emitted after each engine mutation (or rejection).
// Seq grows by one per event, so sinks can verify delivery order
type Event struct {
	Seq        uint64          `json:"seq"`
	Type       EventType       `json:"type"`
	InvoiceID  int64           `json:"invoice_id"`
	OwnerID    string          `json:"owner_id,omitempty"`
	BidderID   string          `json:"bidder_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Bid        *Bid            `json:"bid,omitempty"`
	WinningBid *Bid            `json:"winning_bid,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	ReasonCode string          `json:"reason_code,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
