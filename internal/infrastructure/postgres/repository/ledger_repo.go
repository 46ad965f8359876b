package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultLedgerRepository keeps holdings in the escrow database. When the
// context carries an escrow transaction, transfers join it, so a rolled back
// status change also rolls back the movement of funds.
type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

func (r *DefaultLedgerRepository) OpenHolding(ctx context.Context, id domain.HoldingID) error {
	if id == "" {
		return fmt.Errorf("%w: empty holding id", domain.ErrUnknownHolding)
	}
	return conn(ctx, r.DB).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.HoldingModel{ID: string(id)}).Error
}

func (r *DefaultLedgerRepository) Balance(ctx context.Context, id domain.HoldingID) (uint64, error) {
	var holding models.HoldingModel
	if err := conn(ctx, r.DB).First(&holding, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownHolding, id)
		}
		return 0, err
	}
	return holding.Balance, nil
}

// Deposit credits a holding from outside the ledger, opening it if needed.
func (r *DefaultLedgerRepository) Deposit(ctx context.Context, id domain.HoldingID, amount uint64) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}
	return r.inTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.HoldingModel{ID: string(id)}).Error; err != nil {
			return err
		}
		return tx.Model(&models.HoldingModel{}).
			Where("id = ?", string(id)).
			Update("balance", gorm.Expr("balance + ?", amount)).Error
	})
}

func (r *DefaultLedgerRepository) Transfer(ctx context.Context, from, to domain.HoldingID, amount uint64) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}
	if from == to {
		return fmt.Errorf("transfer from %s to itself", from)
	}
	return r.inTx(ctx, func(tx *gorm.DB) error {
		debit := tx.Model(&models.HoldingModel{}).
			Where("id = ? AND balance >= ?", string(from), amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.HoldingModel{}).Where("id = ?", string(from)).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: %s", domain.ErrUnknownHolding, from)
			}
			return fmt.Errorf("%w: holding %s cannot cover %d", domain.ErrInsufficientFunds, from, amount)
		}

		credit := tx.Model(&models.HoldingModel{}).
			Where("id = ?", string(to)).
			Update("balance", gorm.Expr("balance + ?", amount))
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrUnknownHolding, to)
		}

		return tx.Create(&models.LedgerTransferModel{
			ID:          uuid.New().String(),
			FromHolding: string(from),
			ToHolding:   string(to),
			Amount:      amount,
		}).Error
	})
}

// TransfersOf returns the journal entries touching a holding, oldest first.
func (r *DefaultLedgerRepository) TransfersOf(ctx context.Context, id domain.HoldingID) ([]models.LedgerTransferModel, error) {
	var transfers []models.LedgerTransferModel
	if err := conn(ctx, r.DB).
		Where("from_holding = ? OR to_holding = ?", string(id), string(id)).
		Order("created_at ASC").
		Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}

func (r *DefaultLedgerRepository) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if tx, ok := txFromContext(ctx); ok {
		return fn(tx)
	}
	return r.DB.WithContext(ctx).Transaction(fn)
}
