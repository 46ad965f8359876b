package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEscrowStatus(t *testing.T) {
	for _, raw := range []string{"LOCKED", "COMPLETED", "CANCELLED"} {
		status, err := ParseEscrowStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, EscrowStatus(raw), status)
	}

	_, err := ParseEscrowStatus("locked")
	assert.Error(t, err)
	_, err = ParseEscrowStatus("REFUNDED")
	assert.Error(t, err)
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusLocked.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestTransitionTable(t *testing.T) {
	_, ok := TransitionInitialize.Source()
	assert.False(t, ok)

	for _, tr := range []Transition{TransitionConfirm, TransitionCancel} {
		source, ok := tr.Source()
		require.True(t, ok)
		assert.Equal(t, StatusLocked, source)
	}

	cases := map[Transition]EscrowStatus{
		TransitionInitialize: StatusLocked,
		TransitionConfirm:    StatusCompleted,
		TransitionCancel:     StatusCancelled,
	}
	for tr, want := range cases {
		got, err := tr.Target()
		require.NoError(t, err)
		assert.Equal(t, want, got, tr)
	}

	_, err := Transition("refund").Target()
	assert.Error(t, err)
}

func TestEscrowHoldings(t *testing.T) {
	e := &Escrow{ID: "e1", Buyer: "alice", Seller: "bob"}

	assert.Equal(t, HoldingID("escrow:e1"), e.Custody())
	assert.NotEqual(t, HoldingOf(e.Buyer), e.Custody())
	assert.True(t, e.Custody().IsCustody())
	assert.False(t, HoldingOf(e.Buyer).IsCustody())
	assert.True(t, HoldingOf("escrow:e2").IsCustody())

	payee, err := e.Payee(TransitionConfirm)
	require.NoError(t, err)
	assert.Equal(t, HoldingOf("bob"), payee)

	payee, err = e.Payee(TransitionCancel)
	require.NoError(t, err)
	assert.Equal(t, HoldingOf("alice"), payee)

	_, err = e.Payee(TransitionInitialize)
	assert.Error(t, err)
}

func TestRequiredAuthorizers(t *testing.T) {
	e := &Escrow{Buyer: "alice", Seller: "bob"}

	signers, err := RequiredAuthorizers(TransitionInitialize, e)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, signers)

	signers, err = RequiredAuthorizers(TransitionConfirm, e)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, signers)

	signers, err = RequiredAuthorizers(TransitionCancel, e)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, signers)

	_, err = RequiredAuthorizers(Transition("refund"), e)
	assert.Error(t, err)
}
