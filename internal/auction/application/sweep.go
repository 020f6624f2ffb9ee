package application

import (
	"fmt"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// SweepOutcome is what the sweep did to a single invoice
type SweepOutcome string

const (
	OutcomeFinalized      SweepOutcome = "finalized"
	OutcomeNoSale         SweepOutcome = "no_sale"
	OutcomeAwaitingManual SweepOutcome = "awaiting_manual"
)

// SweepResult summarizes one sweep pass
type SweepResult struct {
	At             time.Time
	Examined       int // open invoices past their end time
	Finalized      int
	NoSale         int
	AwaitingManual int
	Failed         int
	// Err aggregates the per invoice failures, nil when every invoice was resolved
	Err error
}

// Sweep advances every OPEN invoice whose bidding window is over at now.
// auto accept invoices are finalized with the highest bid if it reaches the minimum, or closed
// without a sale; manual invoices move to ENDED_AWAITING_MANUAL. Invoices already resolved are
// skipped, so calling it twice with the same now changes nothing the second time.
// It never fails: a broken invoice is reported in the result and the others keep going
func (e *Engine) Sweep(now time.Time) SweepResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := SweepResult{At: now}
	for _, inv := range e.invoices.ListByStatus(domain.StatusOpen) {
		if !inv.ExpiredAt(now) {
			continue
		}
		result.Examined++

		outcome, err := e.sweepInvoice(inv, now)
		if err != nil {
			result.Failed++
			result.Err = multierr.Append(result.Err, err)
			log.Error("Sweep: invoice skipped",
				zap.Int64("invoiceID", inv.ID),
				zap.Error(err),
			)
			continue
		}
		switch outcome {
		case OutcomeFinalized:
			result.Finalized++
		case OutcomeNoSale:
			result.NoSale++
		case OutcomeAwaitingManual:
			result.AwaitingManual++
		}
	}

	if result.Examined > 0 {
		log.Info("Sweep completed",
			zap.Time("at", now),
			zap.Int("examined", result.Examined),
			zap.Int("finalized", result.Finalized),
			zap.Int("noSale", result.NoSale),
			zap.Int("awaitingManual", result.AwaitingManual),
			zap.Int("failed", result.Failed),
		)
	}
	return result
}

// sweepInvoice resolves a single expired invoice. a panic is turned into an error so it stays local
func (e *Engine) sweepInvoice(inv *domain.Invoice, now time.Time) (outcome SweepOutcome, err error) {
	if err := inv.CheckIntegrity(); err != nil {
		return "", fmt.Errorf("sweep invoice %d: %w", inv.ID, err)
	}

	// any failure below restores the invoice as it was before this sweep touched it
	snapshot := inv.Clone()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sweep invoice %d: recovered from panic: %v", inv.ID, r)
		}
		if err != nil {
			*inv = *snapshot
		}
	}()

	ev := domain.Event{InvoiceID: inv.ID, OwnerID: inv.OwnerID, OccurredAt: now}

	if !inv.AutoAcceptHighest {
		if err := inv.EndBidding(); err != nil {
			return "", fmt.Errorf("sweep invoice %d: %w", inv.ID, err)
		}
		outcome = OutcomeAwaitingManual
		ev.Type = domain.EventBiddingEnded
	} else {
		highest := inv.HighestBid()
		if highest != nil && highest.Amount.GreaterThanOrEqual(inv.MinBid) {
			if err := inv.Finalize(highest, now); err != nil {
				return "", fmt.Errorf("sweep invoice %d: %w", inv.ID, err)
			}
			outcome = OutcomeFinalized
			ev.Type = domain.EventInvoiceFinalized
			ev.BidderID = highest.BidderID
			ev.Amount = highest.Amount
			ev.WinningBid = copyBid(highest)
		} else {
			if err := inv.Finalize(nil, now); err != nil {
				return "", fmt.Errorf("sweep invoice %d: %w", inv.ID, err)
			}
			outcome = OutcomeNoSale
			ev.Type = domain.EventAuctionExpiredNoSale
			if highest != nil {
				ev.Amount = highest.Amount
				ev.Reason = fmt.Sprintf("highest bid %s did not meet the minimum %s", highest.Amount, inv.MinBid)
			} else {
				ev.Reason = "no bids"
			}
		}
	}

	if err := e.invoices.Save(inv); err != nil {
		return "", fmt.Errorf("sweep invoice %d: failed to save: %w", inv.ID, err)
	}
	e.emit(ev)
	log.Info("Invoice swept",
		zap.Int64("invoiceID", inv.ID),
		zap.String("outcome", string(outcome)),
		zap.String("status", string(inv.Status)),
	)
	return outcome, nil
}
