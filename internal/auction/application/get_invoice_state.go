package application

import (
	"fmt"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidDTO is the output DTO of a bid
type BidDTO struct {
	ID       uuid.UUID       `json:"id"`
	BidderID string          `json:"bidder_id"`
	Amount   decimal.Decimal `json:"amount"`
	PlacedAt time.Time       `json:"placed_at"`
}

// InvoiceStateDTO is the output DTO for exposing invoice state to the UI/WS
type InvoiceStateDTO struct {
	InvoiceID         int64           `json:"invoice_id"`
	OwnerID           string          `json:"owner_id"`
	Title             string          `json:"title"`
	FaceAmount        decimal.Decimal `json:"face_amount"`
	MaxAllowedBid     decimal.Decimal `json:"max_allowed_bid"`
	BiddingEndAt      time.Time       `json:"bidding_end_at"`
	AutoAcceptHighest bool            `json:"auto_accept_highest"`
	MinBid            decimal.Decimal `json:"min_bid"`
	Status            string          `json:"status"`
	Bids              []BidDTO        `json:"bids"`
	WinningBid        *BidDTO         `json:"winning_bid,omitempty"`
	FinalizedAt       *time.Time      `json:"finalized_at,omitempty"`
}

func newBidDTO(b *domain.Bid) BidDTO {
	return BidDTO{ID: b.ID, BidderID: b.BidderID, Amount: b.Amount, PlacedAt: b.PlacedAt}
}

// NewInvoiceStateDTO maps an invoice snapshot to its output DTO
func NewInvoiceStateDTO(inv *domain.Invoice, spread decimal.Decimal) InvoiceStateDTO {
	dto := InvoiceStateDTO{
		InvoiceID:         inv.ID,
		OwnerID:           inv.OwnerID,
		Title:             inv.Title,
		FaceAmount:        inv.FaceAmount,
		MaxAllowedBid:     inv.MaxAllowedBid(spread),
		BiddingEndAt:      inv.BiddingEndAt,
		AutoAcceptHighest: inv.AutoAcceptHighest,
		MinBid:            inv.MinBid,
		Status:            string(inv.Status),
		Bids:              make([]BidDTO, 0, len(inv.Bids)),
		FinalizedAt:       inv.FinalizedAt,
	}
	for _, b := range inv.Bids {
		dto.Bids = append(dto.Bids, newBidDTO(b))
	}
	if inv.WinningBid != nil {
		w := newBidDTO(inv.WinningBid)
		dto.WinningBid = &w
	}
	return dto
}

// BidSpread is the configured distance below face amount
func (e *Engine) BidSpread() decimal.Decimal {
	return e.spread
}

// GetInvoice returns a snapshot of the invoice
func (e *Engine) GetInvoice(id int64) (*domain.Invoice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inv, err := e.invoices.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get invoice use case: %w", err)
	}
	return inv.Clone(), nil
}

// ListInvoicesByOwner returns snapshots of every invoice listed by ownerID, the business view
func (e *Engine) ListInvoicesByOwner(ownerID string) []*domain.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*domain.Invoice, 0)
	for _, inv := range e.invoices.List() {
		if inv.OwnerID == ownerID {
			out = append(out, inv.Clone())
		}
	}
	return out
}

// ListBiddableInvoices returns snapshots of every invoice not finalized yet, the bidder view
func (e *Engine) ListBiddableInvoices() []*domain.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*domain.Invoice, 0)
	for _, inv := range e.invoices.List() {
		if !inv.IsFinalized() {
			out = append(out, inv.Clone())
		}
	}
	return out
}
