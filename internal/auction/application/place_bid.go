package application

import (
	"fmt"
	"strings"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PlaceBidDTO is DTO input for PlaceBid, contains the necesary data to make a bid
type PlaceBidDTO struct {
	InvoiceID int64
	BidderID  string
	Amount    decimal.Decimal
}

// PlaceBid validates the bid against the invoice and the bidder wallet, then locks the funds
// and appends the bid. Any failure leaves invoice and wallet untouched and emits BidRejected
func (e *Engine) PlaceBid(cmd PlaceBidDTO) (*domain.Bid, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	reject := func(err error) (*domain.Bid, error) {
		e.emit(domain.Event{
			Type:       domain.EventBidRejected,
			InvoiceID:  cmd.InvoiceID,
			BidderID:   cmd.BidderID,
			Amount:     cmd.Amount,
			Reason:     err.Error(),
			ReasonCode: domain.ReasonCode(err),
			OccurredAt: now,
		})
		log.Warn("Bid rejected",
			zap.Int64("invoiceID", cmd.InvoiceID),
			zap.String("bidderID", cmd.BidderID),
			zap.String("amount", cmd.Amount.String()),
			zap.String("reason", domain.ReasonCode(err)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("place bid use case: bid failed for invoice %d: %w", cmd.InvoiceID, err)
	}

	// 1. a bid needs someone to charge, amounts are judged by the admissibility checks
	if strings.TrimSpace(cmd.BidderID) == "" {
		return reject(fmt.Errorf("%w: bidder id is required", domain.ErrValidation))
	}

	// 2. load invoice aggregate
	inv, err := e.invoices.GetByID(cmd.InvoiceID)
	if err != nil {
		return reject(err)
	}

	// 3. admissibility, first violated rule wins
	if err := domain.ValidateBid(inv, e.ledger.Balance(cmd.BidderID), cmd.Amount, now, e.spread); err != nil {
		return reject(err)
	}

	// 4. lock funds, then record the bid
	if err := e.ledger.Debit(cmd.BidderID, cmd.Amount); err != nil {
		return reject(err)
	}
	bid := domain.NewBid(uuid.New(), inv.ID, cmd.BidderID, cmd.Amount, now)
	inv.AddBid(bid)

	if err := e.invoices.Save(inv); err != nil {
		// undo both sides so the call stays atomic
		inv.Bids = inv.Bids[:len(inv.Bids)-1]
		if creditErr := e.ledger.Credit(cmd.BidderID, cmd.Amount); creditErr != nil {
			log.Error("PlaceBid: failed to release locked funds after save error",
				zap.Int64("invoiceID", inv.ID),
				zap.String("bidderID", cmd.BidderID),
				zap.Error(creditErr),
			)
		}
		log.Error("PlaceBid: failed to save invoice",
			zap.Int64("invoiceID", inv.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("place bid use case: failed to save invoice %d: %w", inv.ID, err)
	}

	e.emit(domain.Event{
		Type:       domain.EventBidAccepted,
		InvoiceID:  inv.ID,
		OwnerID:    inv.OwnerID,
		BidderID:   bid.BidderID,
		Amount:     bid.Amount,
		Bid:        copyBid(bid),
		OccurredAt: now,
	})
	log.Info("Bid placed successfully",
		zap.Int64("invoiceID", inv.ID),
		zap.String("bidID", bid.ID.String()),
		zap.String("bidderID", bid.BidderID),
		zap.String("amount", bid.Amount.String()),
		zap.Int("bidCount", len(inv.Bids)),
	)

	return copyBid(bid), nil
}
