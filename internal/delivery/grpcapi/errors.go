package grpcapi

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus переводит доменные ошибки в gRPC коды
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := codes.Internal
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidOrderID),
		errors.Is(err, domain.ErrInvalidParty),
		errors.Is(err, domain.ErrSameParty):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrUnauthorizedCaller):
		code = codes.PermissionDenied
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrUnknownHolding):
		code = codes.FailedPrecondition
	case errors.Is(err, domain.ErrEscrowNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrDuplicateOrder):
		code = codes.AlreadyExists
	case errors.Is(err, domain.ErrTransferFailed):
		code = codes.Aborted
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	}
	return status.Error(code, err.Error())
}
