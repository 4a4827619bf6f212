package wallet

import "errors"

// Ledger operation failures. All are caller-recoverable: an operation that
// returns one of these has not written anything to the store.
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingDestination = errors.New("withdrawal destination is required")
	ErrMissingRecipient   = errors.New("recipient is required")
	ErrInsufficientFunds  = errors.New("insufficient balance")
)
