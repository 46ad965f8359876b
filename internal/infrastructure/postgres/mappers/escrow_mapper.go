package mappers

import (
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainEscrow(model *models.EscrowModel) (*domain.Escrow, error) {
	status, err := domain.ParseEscrowStatus(model.Status)
	if err != nil {
		return nil, err
	}
	return &domain.Escrow{
		ID:        model.ID,
		OrderID:   model.OrderID,
		Buyer:     model.Buyer,
		Seller:    model.Seller,
		Amount:    model.Amount,
		Status:    status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		SettledAt: model.SettledAt,
	}, nil
}

func ToGORMEscrow(escrow *domain.Escrow) *models.EscrowModel {
	return &models.EscrowModel{
		ID:        escrow.ID,
		OrderID:   escrow.OrderID,
		Buyer:     escrow.Buyer,
		Seller:    escrow.Seller,
		Amount:    escrow.Amount,
		Status:    string(escrow.Status),
		CreatedAt: escrow.CreatedAt,
		UpdatedAt: escrow.UpdatedAt,
		SettledAt: escrow.SettledAt,
	}
}
