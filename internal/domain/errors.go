package domain

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidParty       = errors.New("invalid party")
	ErrSameParty          = errors.New("buyer and seller must differ")
	ErrUnauthorizedCaller = errors.New("unauthorized caller")
	ErrInvalidStatus      = errors.New("invalid escrow status")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTransferFailed     = errors.New("transfer failed")
	ErrEscrowNotFound     = errors.New("escrow not found")
	ErrDuplicateOrder     = errors.New("escrow for order already exists")
	ErrUnknownHolding     = errors.New("unknown holding")
)
