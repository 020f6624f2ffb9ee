package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is the wallet of a single user, balance is never negative
type Account struct {
	UserID    string
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

// NewAccount creates an empty account
func NewAccount(userID string) *Account {
	return &Account{UserID: userID, Balance: decimal.Zero}
}

// HasSufficientFunds validates the account can pay before touching the balance
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// ParseAmount turns raw user input into a positive amount.
// empty, non numeric, zero and negative values are rejected with ErrInvalidAmount
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return amount, nil
}
