package logger_test

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGEscrowEventLogger(t *testing.T) {
	ctx := context.Background()
	events := logger.NewPGEscrowEventLogger(testdb.Open(t))

	require.NoError(t, events.LogEscrowEvent(ctx, logger.EscrowAuditEvent{
		EscrowID: "e1", OrderID: "order-1", Transition: "initialize", Status: "LOCKED", Amount: 100, Succeeded: true,
	}))
	require.NoError(t, events.LogEscrowEvent(ctx, logger.EscrowAuditEvent{
		EscrowID: "e1", OrderID: "order-1", Transition: "confirm", Status: "LOCKED", Amount: 100,
		Reason: "unauthorized caller", Timestamp: time.Now(),
	}))
	require.NoError(t, events.LogEscrowEvent(ctx, logger.EscrowAuditEvent{EscrowID: "e2", OrderID: "order-2", Transition: "initialize", Status: "LOCKED", Amount: 1}))

	got, err := events.EscrowEvents(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "initialize", got[0].Transition)
	assert.False(t, got[0].Timestamp.IsZero())
	assert.False(t, got[1].Succeeded)
	assert.Equal(t, "unauthorized caller", got[1].Reason)

	byOrder, err := events.OrderEvents(ctx, "order-2")
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, "e2", byOrder[0].EscrowID)
}
