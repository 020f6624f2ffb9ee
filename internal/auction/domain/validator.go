package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBidSpread is how far below the face amount every bid must stay
var DefaultBidSpread = decimal.NewFromInt(20)

// ValidateBid decides whether amount is admissible against the invoice current state and the
// bidder's balance at instant now. Checks run in a fixed order and the first failure wins:
// open status, bidding window, spread ceiling, minimum bid, funds. A non positive amount never
// reaches the minimum, even when the invoice has none.
// it never mutates its arguments
func ValidateBid(inv *Invoice, balance, amount decimal.Decimal, now time.Time, spread decimal.Decimal) error {
	if !inv.IsOpen() {
		return fmt.Errorf("invoice %d is %s: %w", inv.ID, inv.Status, ErrInvoiceClosed)
	}
	if !inv.AcceptsBidsAt(now) {
		return fmt.Errorf("invoice %d bidding ended at %s: %w", inv.ID, inv.BiddingEndAt.Format(time.RFC3339), ErrBiddingExpired)
	}
	if maxAllowed := inv.MaxAllowedBid(spread); amount.GreaterThan(maxAllowed) {
		return fmt.Errorf("%w: allowed maximum is %s", ErrBidTooHigh, maxAllowed)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: bid amount must be greater than zero, got %s", ErrBidBelowMinimum, amount)
	}
	if amount.LessThan(inv.MinBid) {
		return fmt.Errorf("%w: required minimum is %s", ErrBidBelowMinimum, inv.MinBid)
	}
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, bid %s", ErrInsufficientFunds, balance, amount)
	}
	return nil
}
