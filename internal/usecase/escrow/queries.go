package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	escrowdto "github.com/LavaJover/shvark-escrow-service/internal/usecase/dto/escrow"
)

func (uc *DefaultEscrowUsecase) GetEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	return uc.EscrowRepo.GetEscrowByID(ctx, escrowID)
}

func (uc *DefaultEscrowUsecase) GetEscrowByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error) {
	return uc.EscrowRepo.GetEscrowByOrderID(ctx, orderID)
}

func (uc *DefaultEscrowUsecase) ListEscrows(ctx context.Context, input *escrowdto.ListEscrowsInput) (*escrowdto.ListEscrowsOutput, error) {
	filter := domain.EscrowFilter{
		Party: strings.TrimSpace(input.Party),
		Page:  input.Page,
		Limit: input.Limit,
	}
	if input.Status != "" {
		status, err := domain.ParseEscrowStatus(strings.ToUpper(input.Status))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidStatus, err)
		}
		filter.Status = &status
	}

	escrows, total, err := uc.EscrowRepo.ListEscrows(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &escrowdto.ListEscrowsOutput{
		Escrows: escrows,
		Total:   total,
		Page:    input.Page,
		Limit:   input.Limit,
	}, nil
}

// GetEscrowStats reports escrow counts per status and the value locked in
// custody.
func (uc *DefaultEscrowUsecase) GetEscrowStats(ctx context.Context) (*domain.EscrowStats, error) {
	return uc.EscrowRepo.GetEscrowStats(ctx)
}
