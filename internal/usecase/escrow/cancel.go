package usecase

import (
	"context"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
)

// CancelEscrow refunds the escrowed amount to the buyer. Only the buyer may
// cancel; the refund never goes anywhere else.
func (uc *DefaultEscrowUsecase) CancelEscrow(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	return uc.settle(ctx, escrowID, domain.TransitionCancel)
}
