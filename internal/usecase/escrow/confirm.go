package usecase

import (
	"context"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
)

// ConfirmEscrow releases the escrowed amount to the seller. Both parties
// must sign.
func (uc *DefaultEscrowUsecase) ConfirmEscrow(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	return uc.settle(ctx, escrowID, domain.TransitionConfirm)
}
