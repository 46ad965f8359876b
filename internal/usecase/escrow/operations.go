package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
)

////////////////////// Safe escrow operations //////////////////////////

// EscrowOperation - описание перехода эскроу вместе с движением средств
type EscrowOperation struct {
	EscrowID   string              `json:"escrow_id"`
	Transition domain.Transition   `json:"transition"`
	OldStatus  domain.EscrowStatus `json:"old_status"`
	NewStatus  domain.EscrowStatus `json:"new_status"`
	WalletOp   *WalletOperation    `json:"wallet_op,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

type WalletOperation struct {
	From   domain.HoldingID `json:"from"`
	To     domain.HoldingID `json:"to"`
	Amount uint64           `json:"amount"`
}

///////////////////////// Базовая транзакционная функция //////////////////////////

// ProcessEscrowOperation applies the status change and the transfer as one
// unit. Nothing is retried; the caller decides whether to resubmit.
func (uc *DefaultEscrowUsecase) ProcessEscrowOperation(ctx context.Context, op *EscrowOperation) (*domain.Escrow, error) {
	var (
		walletFunc func(ctx context.Context) error
		applied    bool
	)
	if op.WalletOp != nil {
		walletFunc = func(txCtx context.Context) error {
			if err := uc.processWalletOperation(txCtx, op.WalletOp); err != nil {
				return err
			}
			applied = true
			return nil
		}
	}

	escrow, err := uc.EscrowRepo.ProcessEscrowCriticalOperation(
		ctx,
		op.EscrowID,
		op.OldStatus,
		op.NewStatus,
		walletFunc,
	)
	if err != nil && applied {
		uc.compensate(ctx, op.EscrowID, op.WalletOp, err)
	}
	return escrow, err
}

// compensate reverses a transfer that a detached ledger already committed
// when the escrow transaction carrying it rolled back.
func (uc *DefaultEscrowUsecase) compensate(ctx context.Context, escrowID string, walletOp *WalletOperation, cause error) {
	if !domain.IsDetached(uc.Ledger) {
		return
	}
	ctx = context.WithoutCancel(ctx)
	if err := uc.Ledger.Transfer(ctx, walletOp.To, walletOp.From, walletOp.Amount); err != nil {
		uc.Logger.Error("compensating transfer failed, ledger needs manual reconciliation",
			"escrow_id", escrowID,
			"from", walletOp.To,
			"to", walletOp.From,
			"amount", walletOp.Amount,
			"cause", cause.Error(),
			"error", err.Error(),
		)
		return
	}
	uc.Logger.Warn("escrow transaction rolled back, ledger transfer reversed",
		"escrow_id", escrowID,
		"amount", walletOp.Amount,
		"cause", cause.Error(),
	)
}

// processWalletOperation - любая ошибка леджера при расчете это TransferFailed
func (uc *DefaultEscrowUsecase) processWalletOperation(ctx context.Context, walletOp *WalletOperation) error {
	if err := uc.Ledger.Transfer(ctx, walletOp.From, walletOp.To, walletOp.Amount); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}
	return nil
}

// settle drives Locked into the terminal status of t and pays the escrowed
// amount out of custody.
func (uc *DefaultEscrowUsecase) settle(ctx context.Context, escrowID string, t domain.Transition) (*domain.Escrow, error) {
	started := uc.now()

	escrow, err := uc.EscrowRepo.GetEscrowByID(ctx, escrowID)
	if err != nil {
		uc.reject(ctx, t, &domain.Escrow{ID: escrowID}, err)
		return nil, err
	}

	source, ok := t.Source()
	if !ok {
		return nil, fmt.Errorf("transition %q has no source status", t)
	}
	if escrow.Status != source {
		err := fmt.Errorf("%w: escrow %s is %s", domain.ErrInvalidStatus, escrow.ID, escrow.Status)
		uc.reject(ctx, t, escrow, err)
		return nil, err
	}

	if err := uc.authorize(ctx, t, escrow); err != nil {
		uc.reject(ctx, t, escrow, err)
		return nil, err
	}

	target, err := t.Target()
	if err != nil {
		return nil, err
	}
	payee, err := escrow.Payee(t)
	if err != nil {
		return nil, err
	}

	op := &EscrowOperation{
		EscrowID:   escrow.ID,
		Transition: t,
		OldStatus:  source,
		NewStatus:  target,
		WalletOp: &WalletOperation{
			From:   escrow.Custody(),
			To:     payee,
			Amount: escrow.Amount,
		},
		CreatedAt: started,
	}

	settled, err := uc.ProcessEscrowOperation(ctx, op)
	if err != nil {
		uc.fail(ctx, t, escrow, err)
		return nil, err
	}

	uc.Metrics.RecordSettled(string(t), settled.Amount, uc.now().Sub(started).Seconds())
	uc.notify(ctx, t, settled)
	return settled, nil
}
