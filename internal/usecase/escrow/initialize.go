package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	escrowdto "github.com/LavaJover/shvark-escrow-service/internal/usecase/dto/escrow"
	"github.com/google/uuid"
)

// InitializeEscrow creates a Locked escrow and moves the amount from the
// buyer into the escrow's custody holding. The record and the lock transfer
// commit together or not at all.
func (uc *DefaultEscrowUsecase) InitializeEscrow(ctx context.Context, input *escrowdto.InitializeEscrowInput) (*domain.Escrow, error) {
	started := uc.now()

	escrow, err := newEscrow(input)
	if err != nil {
		uc.reject(ctx, domain.TransitionInitialize, attemptedEscrow(input), err)
		return nil, err
	}
	escrow.CreatedAt = started
	escrow.UpdatedAt = started

	if err := uc.authorize(ctx, domain.TransitionInitialize, escrow); err != nil {
		uc.reject(ctx, domain.TransitionInitialize, escrow, err)
		return nil, err
	}

	if err := uc.checkInitializePreconditions(ctx, escrow); err != nil {
		uc.reject(ctx, domain.TransitionInitialize, escrow, err)
		return nil, err
	}

	lock := &WalletOperation{
		From:   domain.HoldingOf(escrow.Buyer),
		To:     escrow.Custody(),
		Amount: escrow.Amount,
	}
	var locked bool
	lockFunc := func(txCtx context.Context) error {
		if err := uc.Ledger.OpenHolding(txCtx, lock.To); err != nil {
			return fmt.Errorf("%w: open custody: %w", domain.ErrTransferFailed, err)
		}
		if err := uc.Ledger.Transfer(txCtx, lock.From, lock.To, lock.Amount); err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return err
			}
			return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
		}
		locked = true
		return nil
	}

	if err := uc.EscrowRepo.CreateEscrow(ctx, escrow, lockFunc); err != nil {
		if locked {
			uc.compensate(ctx, escrow.ID, lock, err)
		}
		uc.fail(ctx, domain.TransitionInitialize, escrow, err)
		return nil, err
	}

	uc.Metrics.RecordLocked(escrow.Amount, uc.now().Sub(started).Seconds())
	uc.notify(ctx, domain.TransitionInitialize, escrow)
	return escrow, nil
}

func newEscrow(input *escrowdto.InitializeEscrowInput) (*domain.Escrow, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: empty request", domain.ErrInvalidOrderID)
	}
	orderID := strings.TrimSpace(input.OrderID)
	buyer := strings.TrimSpace(input.Buyer)
	seller := strings.TrimSpace(input.Seller)

	switch {
	case orderID == "":
		return nil, domain.ErrInvalidOrderID
	case input.Amount == 0:
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	case buyer == "":
		return nil, fmt.Errorf("%w: buyer is required", domain.ErrInvalidParty)
	case seller == "":
		return nil, fmt.Errorf("%w: seller is required", domain.ErrInvalidParty)
	case domain.HoldingOf(buyer).IsCustody():
		return nil, fmt.Errorf("%w: buyer %q is a custody holding", domain.ErrInvalidParty, buyer)
	case domain.HoldingOf(seller).IsCustody():
		return nil, fmt.Errorf("%w: seller %q is a custody holding", domain.ErrInvalidParty, seller)
	case buyer == seller:
		return nil, domain.ErrSameParty
	}

	return &domain.Escrow{
		ID:      uuid.New().String(),
		OrderID: orderID,
		Buyer:   buyer,
		Seller:  seller,
		Amount:  input.Amount,
		Status:  domain.StatusLocked,
	}, nil
}

// attemptedEscrow keeps what is known about a request that failed validation,
// so the audit trail still names the order.
func attemptedEscrow(input *escrowdto.InitializeEscrowInput) *domain.Escrow {
	if input == nil {
		return &domain.Escrow{}
	}
	return &domain.Escrow{
		OrderID: strings.TrimSpace(input.OrderID),
		Buyer:   strings.TrimSpace(input.Buyer),
		Seller:  strings.TrimSpace(input.Seller),
		Amount:  input.Amount,
	}
}

// checkInitializePreconditions rejects requests that would fail inside the
// transaction anyway, so the common failures never open one.
func (uc *DefaultEscrowUsecase) checkInitializePreconditions(ctx context.Context, escrow *domain.Escrow) error {
	_, err := uc.EscrowRepo.GetEscrowByOrderID(ctx, escrow.OrderID)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", domain.ErrDuplicateOrder, escrow.OrderID)
	case !errors.Is(err, domain.ErrEscrowNotFound):
		return err
	}

	if _, err := uc.Ledger.Balance(ctx, domain.HoldingOf(escrow.Seller)); err != nil {
		return fmt.Errorf("seller: %w", err)
	}

	balance, err := uc.Ledger.Balance(ctx, domain.HoldingOf(escrow.Buyer))
	if err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	if balance < escrow.Amount {
		return fmt.Errorf("%w: buyer has %d, escrow needs %d", domain.ErrInsufficientFunds, balance, escrow.Amount)
	}
	return nil
}
