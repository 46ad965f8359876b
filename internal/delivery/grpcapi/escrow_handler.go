package grpcapi

import (
	"context"
	"errors"
	"strings"

	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/escrowpb"
	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/mappers"
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	usecase "github.com/LavaJover/shvark-escrow-service/internal/usecase/escrow"
	escrowdto "github.com/LavaJover/shvark-escrow-service/internal/usecase/dto/escrow"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type EscrowHandler struct {
	uc usecase.EscrowUsecase
	escrowpb.UnimplementedEscrowServiceServer
}

func NewEscrowHandler(uc usecase.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{
		uc: uc,
	}
}

func (h *EscrowHandler) InitializeEscrow(ctx context.Context, r *escrowpb.InitializeEscrowRequest) (*escrowpb.EscrowResponse, error) {
	escrow, err := h.uc.InitializeEscrow(ctx, &escrowdto.InitializeEscrowInput{
		OrderID: r.OrderId,
		Amount:  r.Amount,
		Buyer:   r.Buyer,
		Seller:  r.Seller,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &escrowpb.EscrowResponse{Escrow: mappers.ToProtoEscrow(escrow)}, nil
}

func (h *EscrowHandler) ConfirmEscrow(ctx context.Context, r *escrowpb.ConfirmEscrowRequest) (*escrowpb.EscrowResponse, error) {
	if r.EscrowId == "" {
		return nil, status.Error(codes.InvalidArgument, "escrow_id is required")
	}
	escrow, err := h.uc.ConfirmEscrow(ctx, r.EscrowId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &escrowpb.EscrowResponse{Escrow: mappers.ToProtoEscrow(escrow)}, nil
}

func (h *EscrowHandler) CancelEscrow(ctx context.Context, r *escrowpb.CancelEscrowRequest) (*escrowpb.EscrowResponse, error) {
	if r.EscrowId == "" {
		return nil, status.Error(codes.InvalidArgument, "escrow_id is required")
	}
	escrow, err := h.uc.CancelEscrow(ctx, r.EscrowId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &escrowpb.EscrowResponse{Escrow: mappers.ToProtoEscrow(escrow)}, nil
}

func (h *EscrowHandler) GetEscrow(ctx context.Context, r *escrowpb.GetEscrowRequest) (*escrowpb.EscrowResponse, error) {
	var (
		escrow *domain.Escrow
		err    error
	)
	switch {
	case r.EscrowId != "":
		escrow, err = h.uc.GetEscrowByID(ctx, r.EscrowId)
	case r.OrderId != "":
		escrow, err = h.uc.GetEscrowByOrderID(ctx, r.OrderId)
	default:
		return nil, status.Error(codes.InvalidArgument, "escrow_id or order_id is required")
	}
	if err != nil {
		return nil, toStatus(err)
	}

	return &escrowpb.EscrowResponse{Escrow: mappers.ToProtoEscrow(escrow)}, nil
}

func (h *EscrowHandler) ListEscrows(ctx context.Context, r *escrowpb.ListEscrowsRequest) (*escrowpb.ListEscrowsResponse, error) {
	output, err := h.uc.ListEscrows(ctx, &escrowdto.ListEscrowsInput{
		Party:  strings.TrimSpace(r.Party),
		Status: r.Status,
		Page:   int(r.Page),
		Limit:  int(r.Limit),
	})
	if err != nil {
		// здесь неверный статус это фильтр запроса, а не состояние эскроу
		if errors.Is(err, domain.ErrInvalidStatus) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, toStatus(err)
	}

	return &escrowpb.ListEscrowsResponse{
		Escrows: mappers.ToProtoEscrows(output.Escrows),
		Total:   output.Total,
	}, nil
}

func (h *EscrowHandler) GetEscrowStats(ctx context.Context, r *escrowpb.GetEscrowStatsRequest) (*escrowpb.GetEscrowStatsResponse, error) {
	stats, err := h.uc.GetEscrowStats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return mappers.ToProtoEscrowStats(stats), nil
}
