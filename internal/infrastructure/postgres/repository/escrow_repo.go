package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

type DefaultEscrowRepository struct {
	DB *gorm.DB
}

func NewDefaultEscrowRepository(db *gorm.DB) *DefaultEscrowRepository {
	return &DefaultEscrowRepository{DB: db}
}

func (r *DefaultEscrowRepository) CreateEscrow(ctx context.Context, escrow *domain.Escrow, lockFunc func(ctx context.Context) error) error {
	return conn(ctx, r.DB).Transaction(func(tx *gorm.DB) error {
		model := mappers.ToGORMEscrow(escrow)
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateOrder, escrow.OrderID)
			}
			return err
		}

		if lockFunc != nil {
			if err := lockFunc(withTx(ctx, tx)); err != nil {
				return err
			}
		}

		escrow.CreatedAt = model.CreatedAt
		escrow.UpdatedAt = model.UpdatedAt
		return nil
	})
}

func (r *DefaultEscrowRepository) GetEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	return r.findOne(conn(ctx, r.DB), "id = ?", escrowID)
}

func (r *DefaultEscrowRepository) GetEscrowByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error) {
	return r.findOne(conn(ctx, r.DB), "order_id = ?", orderID)
}

func (r *DefaultEscrowRepository) findOne(db *gorm.DB, query string, arg string) (*domain.Escrow, error) {
	var model models.EscrowModel
	if err := db.First(&model, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEscrowNotFound, arg)
		}
		return nil, err
	}
	return mappers.ToDomainEscrow(&model)
}

func (r *DefaultEscrowRepository) ListEscrows(ctx context.Context, filter domain.EscrowFilter) ([]*domain.Escrow, int64, error) {
	query := conn(ctx, r.DB).Model(&models.EscrowModel{})
	if filter.Party != "" {
		query = query.Where("buyer = ? OR seller = ?", filter.Party, filter.Party)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var escrowModels []models.EscrowModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&escrowModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find escrow models: %w", err)
	}

	escrows := make([]*domain.Escrow, 0, len(escrowModels))
	for i := range escrowModels {
		escrow, err := mappers.ToDomainEscrow(&escrowModels[i])
		if err != nil {
			return nil, 0, err
		}
		escrows = append(escrows, escrow)
	}
	return escrows, total, nil
}

func (r *DefaultEscrowRepository) GetEscrowStats(ctx context.Context) (*domain.EscrowStats, error) {
	db := conn(ctx, r.DB)

	var counts []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.EscrowModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	stats := &domain.EscrowStats{}
	for _, c := range counts {
		stats.TotalEscrows += c.Count
		switch domain.EscrowStatus(c.Status) {
		case domain.StatusLocked:
			stats.ActiveEscrows = c.Count
		case domain.StatusCompleted:
			stats.CompletedEscrows = c.Count
		case domain.StatusCancelled:
			stats.CancelledEscrows = c.Count
		}
	}

	var locked uint64
	if err := db.Model(&models.EscrowModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(domain.StatusLocked)).
		Scan(&locked).Error; err != nil {
		return nil, err
	}
	stats.TotalValueLocked = locked

	return stats, nil
}

func (r *DefaultEscrowRepository) ProcessEscrowCriticalOperation(
	ctx context.Context,
	escrowID string,
	from, to domain.EscrowStatus,
	walletFunc func(ctx context.Context) error,
) (*domain.Escrow, error) {
	var escrow *domain.Escrow
	err := conn(ctx, r.DB).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]interface{}{
			"status":     string(to),
			"updated_at": now,
		}
		if to.Terminal() {
			updates["settled_at"] = now
		}

		// Compare-and-set: the guard and the write are one statement.
		res := tx.Model(&models.EscrowModel{}).
			Where("id = ? AND status = ?", escrowID, string(from)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.EscrowModel{}).Where("id = ?", escrowID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: %s", domain.ErrEscrowNotFound, escrowID)
			}
			return fmt.Errorf("%w: escrow %s is not %s", domain.ErrInvalidStatus, escrowID, from)
		}

		if walletFunc != nil {
			if err := walletFunc(withTx(ctx, tx)); err != nil {
				return err
			}
		}

		var err error
		escrow, err = r.findOne(tx, "id = ?", escrowID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return escrow, nil
}
