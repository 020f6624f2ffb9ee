package domain

import "github.com/shopspring/decimal"

// InvoiceRepository is the invoice store owned by the engine
type InvoiceRepository interface {
	NextID() int64
	Save(inv *Invoice) error
	GetByID(id int64) (*Invoice, error)
	// List returns every invoice ordered by id
	List() []*Invoice
	// ListByStatus returns invoices in the given state ordered by id
	ListByStatus(status InvoiceStatus) []*Invoice
}

// WalletLedger is the port to the wallet bounded context
type WalletLedger interface {
	Balance(userID string) decimal.Decimal
	Debit(userID string, amount decimal.Decimal) error
	Credit(userID string, amount decimal.Decimal) error
	Deposit(userID string, amount decimal.Decimal) error
}

// Notifier receives engine events. Notify is called while the engine holds its lock,
// implementations must not block nor call back into the engine
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ev Event)

func (f NotifierFunc) Notify(ev Event) { f(ev) }
