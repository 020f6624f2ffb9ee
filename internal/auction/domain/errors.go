package domain

import (
	"errors"

	wallet "github.com/cristianortiz/invoiceAuction/internal/wallet/domain"
)

// caller's fault, never retried
var ErrValidation = errors.New("invalid input")

var ErrInvoiceNotFound = errors.New("invoice not found")

// state conflicts, retrying the same call does not help
var (
	ErrInvoiceClosed    = errors.New("invoice is closed for bidding")
	ErrBiddingExpired   = errors.New("bidding time is over")
	ErrAlreadyFinalized = errors.New("invoice already finalized")
)

// business rule rejections, caller may retry with another amount
var (
	ErrBidTooHigh        = errors.New("bid is above the allowed maximum")
	ErrBidBelowMinimum   = errors.New("bid is below the required minimum")
	ErrInsufficientFunds = wallet.ErrInsufficientFunds
)

// integrity violations
var (
	ErrUnknownBid       = errors.New("bid does not belong to invoice")
	ErrCorruptedBidList = errors.New("invoice bid list is inconsistent")
)

// ErrorKind groups domain errors by how a caller should react to them
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindRejected   ErrorKind = "rejected"
	KindIntegrity  ErrorKind = "integrity"
	KindInternal   ErrorKind = "internal"
)

// KindOf classifies err, wrapped errors included
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInvalidUser):
		return KindValidation
	case errors.Is(err, ErrInvoiceNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvoiceClosed),
		errors.Is(err, ErrBiddingExpired),
		errors.Is(err, ErrAlreadyFinalized):
		return KindConflict
	case errors.Is(err, ErrBidTooHigh),
		errors.Is(err, ErrBidBelowMinimum),
		errors.Is(err, ErrInsufficientFunds):
		return KindRejected
	case errors.Is(err, ErrUnknownBid),
		errors.Is(err, ErrCorruptedBidList):
		return KindIntegrity
	default:
		return KindInternal
	}
}

// ReasonCode is the short machine readable name of a rejection, used in events and api responses
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation), errors.Is(err, wallet.ErrInvalidAmount), errors.Is(err, wallet.ErrInvalidUser):
		return "validation"
	case errors.Is(err, ErrInvoiceNotFound):
		return "not_found"
	case errors.Is(err, ErrInvoiceClosed):
		return "invoice_closed"
	case errors.Is(err, ErrBiddingExpired):
		return "bidding_expired"
	case errors.Is(err, ErrAlreadyFinalized):
		return "already_finalized"
	case errors.Is(err, ErrBidTooHigh):
		return "bid_too_high"
	case errors.Is(err, ErrBidBelowMinimum):
		return "bid_below_minimum"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrUnknownBid):
		return "unknown_bid"
	case errors.Is(err, ErrCorruptedBidList):
		return "corrupted_bid_list"
	default:
		return "internal"
	}
}
