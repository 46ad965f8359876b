package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// EscrowMetrics содержит все метрики для эскроу
type EscrowMetrics struct {
	// Попытки переходов по типу и результату
	TransitionsTotal *prometheus.CounterVec
	// Сумма, прошедшая через успешные переходы
	TransitionAmountTotal *prometheus.CounterVec
	// Причины отказов (InvalidStatus, UnauthorizedCaller, ...)
	RejectionsTotal *prometheus.CounterVec

	// Текущее количество и сумма заблокированных эскроу
	EscrowsLocked    prometheus.Gauge
	ValueLockedTotal prometheus.Gauge

	// Время выполнения атомарной операции
	TransitionDuration *prometheus.HistogramVec
}

// NewEscrowMetrics регистрирует метрики в reg. nil означает DefaultRegisterer.
func NewEscrowMetrics(reg prometheus.Registerer) *EscrowMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &EscrowMetrics{
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transitions_total",
				Help: "Количество попыток переходов эскроу по типу и результату",
			},
			[]string{"transition", "outcome"},
		),

		TransitionAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transition_amount_total",
				Help: "Сумма, перемещенная успешными переходами",
			},
			[]string{"transition"},
		),

		RejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_rejections_total",
				Help: "Отклоненные переходы по причине",
			},
			[]string{"transition", "reason"},
		),

		EscrowsLocked: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "escrow_locked_count",
				Help: "Текущее количество эскроу в статусе LOCKED",
			},
		),

		ValueLockedTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "escrow_value_locked",
				Help: "Текущая сумма средств на кастодиальных счетах",
			},
		),

		TransitionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_transition_duration_seconds",
				Help:    "Время выполнения перехода в секундах",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms, 10ms, 20ms...
			},
			[]string{"transition"},
		),
	}
}

// RecordLocked записывает созданный эскроу
func (m *EscrowMetrics) RecordLocked(amount uint64, durationSeconds float64) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues("initialize", OutcomeSuccess).Inc()
	m.TransitionAmountTotal.WithLabelValues("initialize").Add(float64(amount))
	m.TransitionDuration.WithLabelValues("initialize").Observe(durationSeconds)
	m.EscrowsLocked.Inc()
	m.ValueLockedTotal.Add(float64(amount))
}

// RecordSettled записывает завершенный или отмененный эскроу
func (m *EscrowMetrics) RecordSettled(transition string, amount uint64, durationSeconds float64) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(transition, OutcomeSuccess).Inc()
	m.TransitionAmountTotal.WithLabelValues(transition).Add(float64(amount))
	m.TransitionDuration.WithLabelValues(transition).Observe(durationSeconds)
	m.EscrowsLocked.Dec()
	m.ValueLockedTotal.Sub(float64(amount))
}

// RecordRejected записывает отказ до любых изменений состояния
func (m *EscrowMetrics) RecordRejected(transition, reason string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(transition, OutcomeRejected).Inc()
	m.RejectionsTotal.WithLabelValues(transition, reason).Inc()
}

// RecordFailed записывает откат атомарной операции
func (m *EscrowMetrics) RecordFailed(transition string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(transition, OutcomeFailed).Inc()
}

// SetLocked выставляет гейджи из статистики БД при старте
func (m *EscrowMetrics) SetLocked(count int64, value uint64) {
	if m == nil {
		return
	}
	m.EscrowsLocked.Set(float64(count))
	m.ValueLockedTotal.Set(float64(value))
}
