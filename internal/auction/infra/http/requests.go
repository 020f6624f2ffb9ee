package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// amounts are validated by the engine, the tags only cover what is required to build a command

type createInvoiceRequest struct {
	OwnerID           string          `json:"owner_id" validate:"required,max=128"`
	Title             string          `json:"title" validate:"required,max=256"`
	FaceAmount        decimal.Decimal `json:"face_amount"`
	BiddingEndAt      time.Time       `json:"bidding_end_at" validate:"required"`
	AutoAcceptHighest bool            `json:"auto_accept_highest"`
	MinBid            decimal.Decimal `json:"min_bid"`
}

type placeBidRequest struct {
	BidderID string          `json:"bidder_id" validate:"required,max=128"`
	Amount   decimal.Decimal `json:"amount"`
}

type finalizeRequest struct {
	BidID uuid.UUID `json:"bid_id"`
}

// the amount stays raw text, like the wallet form it replaces, and is parsed by the wallet domain
type depositRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// WalletResponse is the balance view of a user
type WalletResponse struct {
	UserID  string          `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}
