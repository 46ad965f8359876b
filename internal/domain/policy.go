package domain

import "fmt"

// RequiredAuthorizers lists the identities that must sign a transition.
// Release needs both parties so the seller cannot pay itself out.
func RequiredAuthorizers(t Transition, e *Escrow) ([]string, error) {
	switch t {
	case TransitionInitialize:
		return []string{e.Buyer}, nil
	case TransitionConfirm:
		return []string{e.Buyer, e.Seller}, nil
	case TransitionCancel:
		return []string{e.Buyer}, nil
	default:
		return nil, fmt.Errorf("unknown transition %q", t)
	}
}
