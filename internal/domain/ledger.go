package domain

import (
	"context"
	"strings"
)

// HoldingID addresses a value-holding account in the ledger.
type HoldingID string

const custodyPrefix = "escrow:"

func HoldingOf(identity string) HoldingID {
	return HoldingID(identity)
}

// CustodyHolding is the holding scoped to a single escrow.
func CustodyHolding(escrowID string) HoldingID {
	return HoldingID(custodyPrefix + escrowID)
}

// IsCustody reports whether the holding belongs to an escrow rather than a
// party. Party identities must never land in this namespace.
func (id HoldingID) IsCustody() bool {
	return strings.HasPrefix(string(id), custodyPrefix)
}

// Ledger moves value between holdings. Transfer is applied fully or not at
// all and fails with ErrInsufficientFunds when the source is short.
type Ledger interface {
	OpenHolding(ctx context.Context, id HoldingID) error
	Balance(ctx context.Context, id HoldingID) (uint64, error)
	Transfer(ctx context.Context, from, to HoldingID, amount uint64) error
}

// DetachedLedger is a Ledger whose transfers commit on their own and do not
// join the escrow transaction. A transfer it accepted is not undone by a
// rollback and has to be reversed explicitly.
type DetachedLedger interface {
	Ledger
	Detached() bool
}

// IsDetached reports whether transfers on l survive an escrow rollback.
func IsDetached(l Ledger) bool {
	d, ok := l.(DetachedLedger)
	return ok && d.Detached()
}
