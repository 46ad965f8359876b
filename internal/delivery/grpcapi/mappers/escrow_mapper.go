package mappers

import (
	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/escrowpb"
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
)

func ToProtoEscrow(escrow *domain.Escrow) *escrowpb.Escrow {
	if escrow == nil {
		return nil
	}
	return &escrowpb.Escrow{
		EscrowId:  escrow.ID,
		OrderId:   escrow.OrderID,
		Buyer:     escrow.Buyer,
		Seller:    escrow.Seller,
		Amount:    escrow.Amount,
		Status:    string(escrow.Status),
		CreatedAt: escrow.CreatedAt,
		UpdatedAt: escrow.UpdatedAt,
		SettledAt: escrow.SettledAt,
	}
}

func ToProtoEscrows(escrows []*domain.Escrow) []*escrowpb.Escrow {
	out := make([]*escrowpb.Escrow, 0, len(escrows))
	for _, escrow := range escrows {
		out = append(out, ToProtoEscrow(escrow))
	}
	return out
}

func ToProtoEscrowStats(stats *domain.EscrowStats) *escrowpb.GetEscrowStatsResponse {
	return &escrowpb.GetEscrowStatsResponse{
		TotalEscrows:     stats.TotalEscrows,
		ActiveEscrows:    stats.ActiveEscrows,
		CompletedEscrows: stats.CompletedEscrows,
		CancelledEscrows: stats.CancelledEscrows,
		TotalValueLocked: stats.TotalValueLocked,
	}
}
