package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
)

// authorize checks every identity the policy requires for the transition.
func (uc *DefaultEscrowUsecase) authorize(ctx context.Context, t domain.Transition, escrow *domain.Escrow) error {
	required, err := domain.RequiredAuthorizers(t, escrow)
	if err != nil {
		return err
	}
	for _, identity := range required {
		if !uc.Signers.IsAuthorizedSigner(ctx, identity) {
			return fmt.Errorf("%w: %s must authorize %s", domain.ErrUnauthorizedCaller, identity, t)
		}
	}
	return nil
}
