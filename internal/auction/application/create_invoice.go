package application

import (
	"fmt"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateInvoiceDTO is the input for listing an invoice for sale
type CreateInvoiceDTO struct {
	OwnerID           string
	Title             string
	FaceAmount        decimal.Decimal
	BiddingEndAt      time.Time
	AutoAcceptHighest bool
	MinBid            decimal.Decimal
}

// CreateInvoice validates the listing and stores a new OPEN invoice with the next id.
// an end time in the past is accepted, the next sweep will resolve it
func (e *Engine) CreateInvoice(cmd CreateInvoiceDTO) (*domain.Invoice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	inv, err := domain.NewInvoice(0, cmd.OwnerID, cmd.Title, cmd.FaceAmount, cmd.BiddingEndAt,
		cmd.AutoAcceptHighest, cmd.MinBid, now)
	if err != nil {
		log.Warn("CreateInvoice: invalid invoice",
			zap.String("ownerID", cmd.OwnerID),
			zap.String("faceAmount", cmd.FaceAmount.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create invoice use case: %w", err)
	}
	inv.ID = e.invoices.NextID()

	if err := e.invoices.Save(inv); err != nil {
		log.Error("CreateInvoice: failed to save invoice",
			zap.Int64("invoiceID", inv.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create invoice use case: failed to save invoice %d: %w", inv.ID, err)
	}

	e.emit(domain.Event{
		Type:       domain.EventInvoiceCreated,
		InvoiceID:  inv.ID,
		OwnerID:    inv.OwnerID,
		Amount:     inv.FaceAmount,
		OccurredAt: now,
	})
	log.Info("Invoice created",
		zap.Int64("invoiceID", inv.ID),
		zap.String("ownerID", inv.OwnerID),
		zap.String("faceAmount", inv.FaceAmount.String()),
		zap.Time("biddingEndAt", inv.BiddingEndAt),
		zap.Bool("autoAcceptHighest", inv.AutoAcceptHighest),
		zap.String("minBid", inv.MinBid.String()),
	)

	return inv.Clone(), nil
}
