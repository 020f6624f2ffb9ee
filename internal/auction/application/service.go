package application

import (
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=application

// AuctionService defines application interface layer of auction module
// exposes uses cases to external layer, aka infra
type AuctionService interface {
	CreateInvoice(cmd CreateInvoiceDTO) (*domain.Invoice, error)
	// PlaceBid handles logic when a user makes a bid on an invoice
	// receives a command with necesary data and returns the created bid or an error
	PlaceBid(cmd PlaceBidDTO) (*domain.Bid, error)
	ManualFinalize(cmd ManualFinalizeDTO) (*domain.Invoice, error)
	GetInvoice(id int64) (*domain.Invoice, error)
	ListInvoicesByOwner(ownerID string) []*domain.Invoice
	ListBiddableInvoices() []*domain.Invoice
	Deposit(userID string, amount decimal.Decimal) error
	WalletBalance(userID string) decimal.Decimal
	BidSpread() decimal.Decimal
}

// Sweepable is what the sweeper drives
type Sweepable interface {
	Sweep(now time.Time) SweepResult
}

var (
	_ AuctionService = (*Engine)(nil)
	_ Sweepable      = (*Engine)(nil)
)
