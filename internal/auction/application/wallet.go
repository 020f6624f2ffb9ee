package application

import (
	"fmt"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/shopspring/decimal"
)

// Deposit adds money to the user's wallet, invalid amounts fail with ErrValidation
func (e *Engine) Deposit(userID string, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ledger.Deposit(userID, amount); err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			return fmt.Errorf("deposit use case: %w: %w", domain.ErrValidation, err)
		}
		return fmt.Errorf("deposit use case: %w", err)
	}
	return nil
}

// WalletBalance returns the user's available balance, locked bid funds excluded
func (e *Engine) WalletBalance(userID string) decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Balance(userID)
}
