package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/wallet/domain"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLedger() (*Ledger, clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	return NewLedger(clock), clock
}

func accounts(l *Ledger) []domain.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		out = append(out, *acc)
	}
	return out
}

func lastUpdate(l *Ledger, userID string) time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if acc, ok := l.accounts[userID]; ok {
		return acc.UpdatedAt
	}
	return time.Time{}
}

func TestLedger_DepositAndDebit(t *testing.T) {
	ledger, clock := newTestLedger()

	require.True(t, ledger.Balance("user1").IsZero(), "unknown user starts at zero")

	require.NoError(t, ledger.Deposit("user1", decimal.NewFromInt(2000)))
	require.True(t, decimal.NewFromInt(2000).Equal(ledger.Balance("user1")))
	require.Equal(t, clock.Now(), lastUpdate(ledger, "user1"))

	require.NoError(t, ledger.Debit("user1", decimal.NewFromInt(80)))
	require.True(t, decimal.NewFromInt(1920).Equal(ledger.Balance("user1")))
}

func TestLedger_Debit(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		seed          int64
		amount        decimal.Decimal
		expectedError error
		wantBalance   int64
	}{
		{name: "exact_balance", userID: "u", seed: 100, amount: decimal.NewFromInt(100), wantBalance: 0},
		{name: "insufficient", userID: "u", seed: 50, amount: decimal.NewFromInt(51), expectedError: domain.ErrInsufficientFunds, wantBalance: 50},
		{name: "unknown_user", userID: "u", seed: 0, amount: decimal.NewFromInt(1), expectedError: domain.ErrInsufficientFunds, wantBalance: 0},
		{name: "zero_amount", userID: "u", seed: 10, amount: decimal.Zero, expectedError: domain.ErrInvalidAmount, wantBalance: 10},
		{name: "negative_amount", userID: "u", seed: 10, amount: decimal.NewFromInt(-1), expectedError: domain.ErrInvalidAmount, wantBalance: 10},
		{name: "empty_user", userID: "", seed: 0, amount: decimal.NewFromInt(1), expectedError: domain.ErrInvalidUser, wantBalance: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger, _ := newTestLedger()
			if tc.seed > 0 {
				require.NoError(t, ledger.Credit(tc.userID, decimal.NewFromInt(tc.seed)))
			}

			err := ledger.Debit(tc.userID, tc.amount)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
			}
			require.True(t, decimal.NewFromInt(tc.wantBalance).Equal(ledger.Balance(tc.userID)))
		})
	}
}

func TestLedger_CreditRejectsInvalid(t *testing.T) {
	ledger, _ := newTestLedger()

	require.ErrorIs(t, ledger.Credit("user1", decimal.Zero), domain.ErrInvalidAmount)
	require.ErrorIs(t, ledger.Deposit("user1", decimal.NewFromInt(-10)), domain.ErrInvalidAmount)
	require.Empty(t, accounts(ledger), "failed credits must not open accounts")
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ledger, _ := newTestLedger()
	require.NoError(t, ledger.Deposit("user1", decimal.NewFromInt(100)))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ledger.Debit("user1", decimal.NewFromInt(7)); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 14, accepted, fmt.Sprintf("100/7 debits fit, got %d", accepted))
	require.True(t, decimal.NewFromInt(2).Equal(ledger.Balance("user1")))
	require.False(t, ledger.Balance("user1").IsNegative())
}
