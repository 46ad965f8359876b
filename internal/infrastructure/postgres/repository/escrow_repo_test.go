package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEscrow(orderID, buyer, seller string, amount uint64) *domain.Escrow {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Escrow{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Buyer:     buyer,
		Seller:    seller,
		Amount:    amount,
		Status:    domain.StatusLocked,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAndGetEscrow(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEscrowRepository(testdb.Open(t))

	escrow := newTestEscrow("order-1", "alice", "bob", 100)
	require.NoError(t, repo.CreateEscrow(ctx, escrow, nil))

	byID, err := repo.GetEscrowByID(ctx, escrow.ID)
	require.NoError(t, err)
	assert.Equal(t, "order-1", byID.OrderID)
	assert.Equal(t, domain.StatusLocked, byID.Status)
	assert.Equal(t, uint64(100), byID.Amount)
	assert.Nil(t, byID.SettledAt)

	byOrder, err := repo.GetEscrowByOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, escrow.ID, byOrder.ID)

	_, err = repo.GetEscrowByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrEscrowNotFound)
}

func TestCreateEscrowDuplicateOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEscrowRepository(testdb.Open(t))

	require.NoError(t, repo.CreateEscrow(ctx, newTestEscrow("order-1", "alice", "bob", 100), nil))
	err := repo.CreateEscrow(ctx, newTestEscrow("order-1", "carol", "dave", 5), nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)
}

func TestCreateEscrowRollsBackWhenLockFails(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEscrowRepository(testdb.Open(t))

	escrow := newTestEscrow("order-1", "alice", "bob", 100)
	errLock := errors.New("lock failed")
	err := repo.CreateEscrow(ctx, escrow, func(context.Context) error { return errLock })
	require.ErrorIs(t, err, errLock)

	_, err = repo.GetEscrowByID(ctx, escrow.ID)
	assert.ErrorIs(t, err, domain.ErrEscrowNotFound)
}

func TestProcessEscrowCriticalOperation(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	repo := NewDefaultEscrowRepository(db)
	ledger := NewDefaultLedgerRepository(db)

	escrow := newTestEscrow("order-1", "alice", "bob", 100)
	require.NoError(t, ledger.Deposit(ctx, escrow.Custody(), 100))
	require.NoError(t, ledger.OpenHolding(ctx, "bob"))
	require.NoError(t, repo.CreateEscrow(ctx, escrow, nil))

	settled, err := repo.ProcessEscrowCriticalOperation(ctx, escrow.ID, domain.StatusLocked, domain.StatusCompleted,
		func(txCtx context.Context) error {
			return ledger.Transfer(txCtx, escrow.Custody(), "bob", escrow.Amount)
		})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, settled.Status)
	assert.NotNil(t, settled.SettledAt)

	bob, err := ledger.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), bob)

	t.Run("stale source status", func(t *testing.T) {
		_, err := repo.ProcessEscrowCriticalOperation(ctx, escrow.ID, domain.StatusLocked, domain.StatusCancelled, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
	t.Run("missing escrow", func(t *testing.T) {
		_, err := repo.ProcessEscrowCriticalOperation(ctx, "missing", domain.StatusLocked, domain.StatusCancelled, nil)
		assert.ErrorIs(t, err, domain.ErrEscrowNotFound)
	})
}

func TestProcessEscrowCriticalOperationConcurrent(t *testing.T) {
	ctx := context.Background()
	db := testdb.OpenConcurrent(t, 8)
	repo := NewDefaultEscrowRepository(db)
	ledger := NewDefaultLedgerRepository(db)

	escrow := newTestEscrow("order-1", "alice", "bob", 100)
	require.NoError(t, ledger.Deposit(ctx, escrow.Custody(), 100))
	require.NoError(t, ledger.OpenHolding(ctx, "alice"))
	require.NoError(t, ledger.OpenHolding(ctx, "bob"))
	require.NoError(t, repo.CreateEscrow(ctx, escrow, nil))

	const workers = 8
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, workers)
	)
	for i := 0; i < workers; i++ {
		to, payee := domain.StatusCompleted, domain.HoldingOf("bob")
		if i%2 == 1 {
			to, payee = domain.StatusCancelled, domain.HoldingOf("alice")
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = repo.ProcessEscrowCriticalOperation(ctx, escrow.ID, domain.StatusLocked, to,
				func(txCtx context.Context) error {
					return ledger.Transfer(txCtx, escrow.Custody(), payee, escrow.Amount)
				})
		}(i)
	}
	close(start)
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	}
	require.Equal(t, 1, succeeded)

	custody, err := ledger.Balance(ctx, escrow.Custody())
	require.NoError(t, err)
	alice, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	bob, err := ledger.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), custody)
	assert.Equal(t, uint64(100), alice+bob)

	stored, err := repo.GetEscrowByID(ctx, escrow.ID)
	require.NoError(t, err)
	assert.True(t, stored.Status.Terminal())
}

func TestProcessEscrowCriticalOperationRollsBackStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEscrowRepository(testdb.Open(t))

	escrow := newTestEscrow("order-1", "alice", "bob", 100)
	require.NoError(t, repo.CreateEscrow(ctx, escrow, nil))

	errTransfer := errors.New("ledger down")
	_, err := repo.ProcessEscrowCriticalOperation(ctx, escrow.ID, domain.StatusLocked, domain.StatusCompleted,
		func(context.Context) error { return errTransfer })
	require.ErrorIs(t, err, errTransfer)

	stored, err := repo.GetEscrowByID(ctx, escrow.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLocked, stored.Status)
	assert.Nil(t, stored.SettledAt)
}

func TestListEscrowsAndStats(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEscrowRepository(testdb.Open(t))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateEscrow(ctx, newTestEscrow(fmt.Sprintf("a-%d", i), "alice", "bob", 10), nil))
	}
	other := newTestEscrow("c-0", "carol", "alice", 25)
	require.NoError(t, repo.CreateEscrow(ctx, other, nil))
	require.NoError(t, repo.CreateEscrow(ctx, newTestEscrow("c-1", "carol", "dave", 7), nil))

	_, err := repo.ProcessEscrowCriticalOperation(ctx, other.ID, domain.StatusLocked, domain.StatusCancelled, nil)
	require.NoError(t, err)

	escrows, total, err := repo.ListEscrows(ctx, domain.EscrowFilter{Party: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, escrows, 4)

	locked := domain.StatusLocked
	escrows, total, err = repo.ListEscrows(ctx, domain.EscrowFilter{Party: "alice", Status: &locked, Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, escrows, 1)

	stats, err := repo.GetEscrowStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalEscrows)
	assert.Equal(t, int64(4), stats.ActiveEscrows)
	assert.Equal(t, int64(1), stats.CancelledEscrows)
	assert.Equal(t, int64(0), stats.CompletedEscrows)
	assert.Equal(t, uint64(37), stats.TotalValueLocked)
}
