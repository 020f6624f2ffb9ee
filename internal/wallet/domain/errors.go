package domain

import "errors"

var (
	ErrInvalidAmount     = errors.New("amount must be a number greater than zero")
	ErrInvalidUser       = errors.New("user id cannot be empty")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)
