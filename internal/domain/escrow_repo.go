package domain

import "context"

type EscrowRepository interface {
	// CreateEscrow inserts the record and runs lockFunc in the same
	// transaction; an error from lockFunc discards the record.
	CreateEscrow(ctx context.Context, escrow *Escrow, lockFunc func(ctx context.Context) error) error
	GetEscrowByID(ctx context.Context, escrowID string) (*Escrow, error)
	GetEscrowByOrderID(ctx context.Context, orderID string) (*Escrow, error)
	ListEscrows(ctx context.Context, filter EscrowFilter) ([]*Escrow, int64, error)
	GetEscrowStats(ctx context.Context) (*EscrowStats, error)
	// ProcessEscrowCriticalOperation moves the record from one status to
	// another with a compare-and-set and runs walletFunc in the same
	// transaction. ErrInvalidStatus is returned when the record is no longer
	// in the source status.
	ProcessEscrowCriticalOperation(ctx context.Context, escrowID string, from, to EscrowStatus, walletFunc func(ctx context.Context) error) (*Escrow, error)
}
