package usecase

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	publisher "github.com/LavaJover/shvark-escrow-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/notifier"
)

// notify runs after commit. Failures here are logged and never undo the
// transition.
func (uc *DefaultEscrowUsecase) notify(ctx context.Context, t domain.Transition, escrow *domain.Escrow) {
	uc.Logger.Info("escrow transition committed",
		"transition", t,
		"escrow_id", escrow.ID,
		"order_id", escrow.OrderID,
		"status", escrow.Status,
		"amount", escrow.Amount,
	)

	uc.audit(ctx, t, escrow, escrow.Status, nil)

	if uc.Publisher != nil {
		if err := uc.Publisher.PublishEscrow(ctx, publisher.NewEscrowEvent(escrow, t)); err != nil {
			uc.Logger.Error("failed to publish kafka escrow event", "escrow_id", escrow.ID, "transition", t, "error", err.Error())
		}
	}

	if uc.Callbacks != nil {
		uc.Callbacks.SendCallback(ctx, notifier.CallbackPayload{
			EscrowID:   escrow.ID,
			OrderID:    escrow.OrderID,
			Transition: string(t),
			Status:     string(escrow.Status),
			Amount:     escrow.Amount,
			Buyer:      escrow.Buyer,
			Seller:     escrow.Seller,
			SettledAt:  escrow.SettledAt,
		})
	}
}

// reject records a guard failure. No state was touched.
func (uc *DefaultEscrowUsecase) reject(ctx context.Context, t domain.Transition, escrow *domain.Escrow, err error) {
	reason := rejectionReason(err)
	uc.Metrics.RecordRejected(string(t), reason)

	attrs := []any{"transition", t, "reason", reason, "error", err.Error()}
	if escrow != nil {
		attrs = append(attrs, "escrow_id", escrow.ID, "order_id", escrow.OrderID)
		uc.audit(ctx, t, escrow, statusAfterAbort(t, escrow), err)
	}
	uc.Logger.Warn("escrow transition rejected", attrs...)
}

// fail records a transition whose atomic unit was rolled back.
func (uc *DefaultEscrowUsecase) fail(ctx context.Context, t domain.Transition, escrow *domain.Escrow, err error) {
	if errors.Is(err, domain.ErrInvalidStatus) || errors.Is(err, domain.ErrDuplicateOrder) || errors.Is(err, domain.ErrInsufficientFunds) {
		// Lost a race against a concurrent call; same outcome as a guard failure.
		uc.reject(ctx, t, escrow, err)
		return
	}

	uc.Metrics.RecordFailed(string(t))

	attrs := []any{"transition", t, "error", err.Error()}
	if escrow != nil {
		attrs = append(attrs, "escrow_id", escrow.ID, "order_id", escrow.OrderID)
		uc.audit(ctx, t, escrow, statusAfterAbort(t, escrow), err)
	}
	uc.Logger.Error("escrow transition rolled back", attrs...)
}

// statusAfterAbort - статус записи после отклоненной попытки. Для initialize
// записи нет, поэтому пусто
func statusAfterAbort(t domain.Transition, escrow *domain.Escrow) domain.EscrowStatus {
	if _, ok := t.Source(); !ok {
		return ""
	}
	return escrow.Status
}

func (uc *DefaultEscrowUsecase) audit(ctx context.Context, t domain.Transition, escrow *domain.Escrow, status domain.EscrowStatus, cause error) {
	if uc.EventLogger == nil {
		return
	}
	event := logger.EscrowAuditEvent{
		EscrowID:   escrow.ID,
		OrderID:    escrow.OrderID,
		Transition: string(t),
		Status:     string(status),
		Amount:     escrow.Amount,
		Succeeded:  cause == nil,
		Timestamp:  uc.now(),
	}
	if cause != nil {
		event.Reason = cause.Error()
	}
	if err := uc.EventLogger.LogEscrowEvent(ctx, event); err != nil {
		uc.Logger.Error("failed to write escrow audit event", "escrow_id", escrow.ID, "error", err.Error())
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidOrderID):
		return "invalid_order_id"
	case errors.Is(err, domain.ErrInvalidParty), errors.Is(err, domain.ErrSameParty):
		return "invalid_party"
	case errors.Is(err, domain.ErrUnauthorizedCaller):
		return "unauthorized_caller"
	case errors.Is(err, domain.ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrEscrowNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicateOrder):
		return "duplicate_order"
	case errors.Is(err, domain.ErrUnknownHolding):
		return "unknown_holding"
	default:
		return "other"
	}
}
