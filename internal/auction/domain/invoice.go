package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// InvoiceStatus represents the actual state of an invoice auction
type InvoiceStatus string

const (
	StatusOpen                InvoiceStatus = "OPEN"
	StatusEndedAwaitingManual InvoiceStatus = "ENDED_AWAITING_MANUAL"
	StatusFinalized           InvoiceStatus = "FINALIZED"
)

// Invoice is the auctioned unit, aggregate root for its bids.
// it has no lock of its own, the engine serializes every access to it
type Invoice struct {
	ID                int64
	OwnerID           string
	Title             string
	FaceAmount        decimal.Decimal
	BiddingEndAt      time.Time
	AutoAcceptHighest bool
	MinBid            decimal.Decimal
	Status            InvoiceStatus
	CreatedAt         time.Time
	FinalizedAt       *time.Time
	// insertion order is submission order, never reordered or removed
	Bids []*Bid
	// points into Bids, set once at finalization
	WinningBid *Bid
}

// NewInvoice validates the listing data and creates an OPEN invoice.
// minBid is ignored and fixed at zero when autoAcceptHighest is false
func NewInvoice(id int64, ownerID, title string, faceAmount decimal.Decimal, biddingEndAt time.Time,
	autoAcceptHighest bool, minBid decimal.Decimal, createdAt time.Time) (*Invoice, error) {

	switch {
	case strings.TrimSpace(ownerID) == "":
		return nil, fmt.Errorf("%w: owner id is required", ErrValidation)
	case strings.TrimSpace(title) == "":
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	case !faceAmount.IsPositive():
		return nil, fmt.Errorf("%w: face amount must be greater than zero, got %s", ErrValidation, faceAmount)
	case biddingEndAt.IsZero():
		return nil, fmt.Errorf("%w: bidding end time is required", ErrValidation)
	}

	if !autoAcceptHighest {
		minBid = decimal.Zero
	} else if minBid.IsNegative() {
		return nil, fmt.Errorf("%w: minimum bid cannot be negative, got %s", ErrValidation, minBid)
	}

	return &Invoice{
		ID:                id,
		OwnerID:           ownerID,
		Title:             title,
		FaceAmount:        faceAmount,
		BiddingEndAt:      biddingEndAt,
		AutoAcceptHighest: autoAcceptHighest,
		MinBid:            minBid,
		Status:            StatusOpen,
		CreatedAt:         createdAt,
		Bids:              []*Bid{},
	}, nil
}

func (inv *Invoice) IsOpen() bool      { return inv.Status == StatusOpen }
func (inv *Invoice) IsFinalized() bool { return inv.Status == StatusFinalized }

// AcceptsBidsAt reports whether now is still inside the bidding window (end time inclusive)
func (inv *Invoice) AcceptsBidsAt(now time.Time) bool {
	return !now.After(inv.BiddingEndAt)
}

// ExpiredAt is the sweep condition, now >= biddingEndAt
func (inv *Invoice) ExpiredAt(now time.Time) bool {
	return !now.Before(inv.BiddingEndAt)
}

// MaxAllowedBid is the face amount minus the fixed spread
func (inv *Invoice) MaxAllowedBid(spread decimal.Decimal) decimal.Decimal {
	return inv.FaceAmount.Sub(spread)
}

// AddBid appends an already validated bid
func (inv *Invoice) AddBid(bid *Bid) {
	inv.Bids = append(inv.Bids, bid)
}

// FindBid returns the bid with id or nil
func (inv *Invoice) FindBid(id uuid.UUID) *Bid {
	for _, b := range inv.Bids {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// HighestBid scans left to right keeping the first bid on ties, nil without bids
func (inv *Invoice) HighestBid() *Bid {
	if len(inv.Bids) == 0 {
		return nil
	}
	highest := inv.Bids[0]
	for _, b := range inv.Bids[1:] {
		if b.Amount.GreaterThan(highest.Amount) {
			highest = b
		}
	}
	return highest
}

// Finalize closes the invoice. winner may be nil (no sale) but otherwise must be one of the invoice bids
func (inv *Invoice) Finalize(winner *Bid, at time.Time) error {
	if inv.IsFinalized() {
		log.Warn("Attempted to finalize invoice that is already finalized",
			zap.Int64("invoiceID", inv.ID),
		)
		return ErrAlreadyFinalized
	}
	if winner != nil && inv.FindBid(winner.ID) != winner {
		return fmt.Errorf("%w: bid %s on invoice %d", ErrUnknownBid, winner.ID, inv.ID)
	}
	inv.Status = StatusFinalized
	inv.WinningBid = winner
	inv.FinalizedAt = &at
	return nil
}

// EndBidding moves an OPEN manual-mode invoice to ENDED_AWAITING_MANUAL
func (inv *Invoice) EndBidding() error {
	if !inv.IsOpen() {
		return fmt.Errorf("end bidding on invoice %d in state %s: %w", inv.ID, inv.Status, ErrInvoiceClosed)
	}
	inv.Status = StatusEndedAwaitingManual
	return nil
}

// CheckIntegrity verifies every bid belongs to this invoice and is well formed
func (inv *Invoice) CheckIntegrity() error {
	for i, b := range inv.Bids {
		if b == nil {
			return fmt.Errorf("%w: nil bid at position %d of invoice %d", ErrCorruptedBidList, i, inv.ID)
		}
		if b.InvoiceID != inv.ID {
			return fmt.Errorf("%w: bid %s references invoice %d, found in %d", ErrCorruptedBidList, b.ID, b.InvoiceID, inv.ID)
		}
		if !b.Amount.IsPositive() {
			return fmt.Errorf("%w: bid %s has non positive amount %s", ErrCorruptedBidList, b.ID, b.Amount)
		}
	}
	return nil
}

// Clone returns a deep copy, the winning bid of the copy points into the copied bid list
func (inv *Invoice) Clone() *Invoice {
	cp := *inv
	cp.Bids = make([]*Bid, len(inv.Bids))
	for i, b := range inv.Bids {
		if b == nil {
			continue
		}
		bc := *b
		cp.Bids[i] = &bc
		if inv.WinningBid == b {
			cp.WinningBid = cp.Bids[i]
		}
	}
	if inv.FinalizedAt != nil {
		at := *inv.FinalizedAt
		cp.FinalizedAt = &at
	}
	return &cp
}
