package domain

import (
	"fmt"
	"time"
)

type EscrowStatus string

const (
	StatusLocked    EscrowStatus = "LOCKED"
	StatusCompleted EscrowStatus = "COMPLETED"
	StatusCancelled EscrowStatus = "CANCELLED"
)

// ParseEscrowStatus rejects any tag outside the closed status set.
func ParseEscrowStatus(raw string) (EscrowStatus, error) {
	switch s := EscrowStatus(raw); s {
	case StatusLocked, StatusCompleted, StatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown escrow status %q", raw)
	}
}

// Terminal reports whether no transition may leave the status.
func (s EscrowStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Transition string

const (
	TransitionInitialize Transition = "initialize"
	TransitionConfirm    Transition = "confirm"
	TransitionCancel     Transition = "cancel"
)

// Source returns the status a record must be in for the transition to apply.
// Initialize has no source: the record does not exist yet.
func (t Transition) Source() (EscrowStatus, bool) {
	switch t {
	case TransitionConfirm, TransitionCancel:
		return StatusLocked, true
	default:
		return "", false
	}
}

// Target returns the status a record holds after the transition.
func (t Transition) Target() (EscrowStatus, error) {
	switch t {
	case TransitionInitialize:
		return StatusLocked, nil
	case TransitionConfirm:
		return StatusCompleted, nil
	case TransitionCancel:
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown transition %q", t)
	}
}

type Escrow struct {
	ID        string
	OrderID   string
	Buyer     string
	Seller    string
	Amount    uint64
	Status    EscrowStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	SettledAt *time.Time
}

// Custody is the ledger holding that keeps the escrowed amount.
func (e *Escrow) Custody() HoldingID {
	return CustodyHolding(e.ID)
}

// Payee returns the holding credited when the transition settles the escrow.
func (e *Escrow) Payee(t Transition) (HoldingID, error) {
	switch t {
	case TransitionConfirm:
		return HoldingOf(e.Seller), nil
	case TransitionCancel:
		return HoldingOf(e.Buyer), nil
	default:
		return "", fmt.Errorf("transition %q does not settle an escrow", t)
	}
}

type EscrowFilter struct {
	Party  string
	Status *EscrowStatus
	Page   int
	Limit  int
}

type EscrowStats struct {
	TotalEscrows     int64
	ActiveEscrows    int64
	CompletedEscrows int64
	CancelledEscrows int64
	TotalValueLocked uint64
}
