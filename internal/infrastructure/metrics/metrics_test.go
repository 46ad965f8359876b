package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEscrowMetricsLifecycle(t *testing.T) {
	m := NewEscrowMetrics(prometheus.NewRegistry())

	m.RecordLocked(100, 0.01)
	m.RecordLocked(50, 0.01)
	m.RecordSettled("confirm", 100, 0.02)
	m.RecordRejected("cancel", "unauthorized_caller")
	m.RecordFailed("cancel")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EscrowsLocked))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.ValueLockedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("initialize", OutcomeSuccess)))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.TransitionAmountTotal.WithLabelValues("confirm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("cancel", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues("cancel", "unauthorized_caller")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("cancel", OutcomeFailed)))

	m.SetLocked(7, 700)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.EscrowsLocked))
	assert.Equal(t, 700.0, testutil.ToFloat64(m.ValueLockedTotal))
}

func TestNilEscrowMetricsIsNoop(t *testing.T) {
	var m *EscrowMetrics
	assert.NotPanics(t, func() {
		m.RecordLocked(1, 0)
		m.RecordSettled("confirm", 1, 0)
		m.RecordRejected("confirm", "other")
		m.RecordFailed("confirm")
		m.SetLocked(0, 0)
	})
}
