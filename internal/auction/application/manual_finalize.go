package application

import (
	"fmt"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ManualFinalizeDTO carries the business choice of winning bid
type ManualFinalizeDTO struct {
	InvoiceID int64
	BidID     uuid.UUID
}

// ManualFinalize lets the business pick a winner at any time before finalization, whether
// bidding is still open or already ended. Non winning bidders keep their funds locked
func (e *Engine) ManualFinalize(cmd ManualFinalizeDTO) (*domain.Invoice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inv, err := e.invoices.GetByID(cmd.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("manual finalize use case: %w", err)
	}
	if inv.IsFinalized() {
		log.Warn("ManualFinalize: invoice already finalized",
			zap.Int64("invoiceID", inv.ID),
			zap.String("bidID", cmd.BidID.String()),
		)
		return nil, fmt.Errorf("manual finalize use case: invoice %d: %w", inv.ID, domain.ErrAlreadyFinalized)
	}
	chosen := inv.FindBid(cmd.BidID)
	if chosen == nil {
		log.Warn("ManualFinalize: bid not found on invoice",
			zap.Int64("invoiceID", inv.ID),
			zap.String("bidID", cmd.BidID.String()),
		)
		return nil, fmt.Errorf("manual finalize use case: bid %s on invoice %d: %w", cmd.BidID, inv.ID, domain.ErrUnknownBid)
	}

	previous := inv.Status
	now := e.clock.Now()
	snapshot := inv.Clone()
	if err := inv.Finalize(chosen, now); err != nil {
		return nil, fmt.Errorf("manual finalize use case: %w", err)
	}
	if err := e.invoices.Save(inv); err != nil {
		// the stored aggregate was finalized in place, put it back as it was
		*inv = *snapshot
		log.Error("ManualFinalize: failed to save invoice",
			zap.Int64("invoiceID", inv.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("manual finalize use case: failed to save invoice %d: %w", inv.ID, err)
	}

	e.emit(domain.Event{
		Type:       domain.EventInvoiceFinalized,
		InvoiceID:  inv.ID,
		OwnerID:    inv.OwnerID,
		BidderID:   chosen.BidderID,
		Amount:     chosen.Amount,
		WinningBid: copyBid(chosen),
		OccurredAt: now,
	})
	log.Info("Invoice finalized manually",
		zap.Int64("invoiceID", inv.ID),
		zap.String("previousStatus", string(previous)),
		zap.String("bidID", chosen.ID.String()),
		zap.String("bidderID", chosen.BidderID),
		zap.String("amount", chosen.Amount.String()),
	)

	return inv.Clone(), nil
}
