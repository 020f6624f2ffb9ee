package memory

import (
	"fmt"
	"sync"

	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/cristianortiz/invoiceAuction/internal/wallet/domain"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// Ledger is a concurrency-safe in-memory wallet ledger, one account per user.
// accounts are opened on the first credit, an unknown user has a zero balance
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	clock    clockwork.Clock
}

// NewLedger creates an empty ledger
func NewLedger(clock clockwork.Clock) *Ledger {
	return &Ledger{
		accounts: make(map[string]*domain.Account),
		clock:    clock,
	}
}

// Balance returns the current balance of userID
func (l *Ledger) Balance(userID string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if acc, ok := l.accounts[userID]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

// Debit atomically removes amount from the user's balance
func (l *Ledger) Debit(userID string, amount decimal.Decimal) error {
	if userID == "" {
		return fmt.Errorf("debit: %w", domain.ErrInvalidUser)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[userID]
	if !ok {
		acc = domain.NewAccount(userID)
	}
	if err := acc.Debit(amount); err != nil {
		log.Warn("Debit rejected",
			zap.String("userID", userID),
			zap.String("amount", amount.String()),
			zap.String("balance", acc.Balance.String()),
			zap.Error(err),
		)
		return fmt.Errorf("debit %s from %s: %w", amount, userID, err)
	}
	acc.UpdatedAt = l.clock.Now()
	l.accounts[userID] = acc
	return nil
}

// Credit atomically adds amount to the user's balance
func (l *Ledger) Credit(userID string, amount decimal.Decimal) error {
	if userID == "" {
		return fmt.Errorf("credit: %w", domain.ErrInvalidUser)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[userID]
	if !ok {
		acc = domain.NewAccount(userID)
	}
	if err := acc.Credit(amount); err != nil {
		return fmt.Errorf("credit %s to %s: %w", amount, userID, err)
	}
	acc.UpdatedAt = l.clock.Now()
	l.accounts[userID] = acc
	return nil
}

// Deposit is the public entry for adding money to a wallet
func (l *Ledger) Deposit(userID string, amount decimal.Decimal) error {
	if err := l.Credit(userID, amount); err != nil {
		return err
	}
	log.Info("Deposit completed",
		zap.String("userID", userID),
		zap.String("amount", amount.String()),
	)
	return nil
}
