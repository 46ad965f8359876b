package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/metrics"
	usecase "github.com/LavaJover/shvark-escrow-service/internal/usecase/escrow"
)

type BackgroundTasks struct {
	EscrowUsecase usecase.EscrowUsecase
	Metrics       *metrics.EscrowMetrics
	Logger        *slog.Logger

	StatsInterval time.Duration
}

func NewBackgroundTasks(escrowUC usecase.EscrowUsecase, escrowMetrics *metrics.EscrowMetrics, log *slog.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		EscrowUsecase: escrowUC,
		Metrics:       escrowMetrics,
		Logger:        log,
		StatsInterval: time.Minute,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startLockedGaugeSync(ctx)
}

// startLockedGaugeSync выравнивает гейджи по БД: счетчики в памяти
// не видят переходы других инстансов сервиса
func (bt *BackgroundTasks) startLockedGaugeSync(ctx context.Context) {
	bt.SyncLockedGauges(ctx)

	ticker := time.NewTicker(bt.StatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.SyncLockedGauges(ctx)
		}
	}
}

func (bt *BackgroundTasks) SyncLockedGauges(ctx context.Context) {
	stats, err := bt.EscrowUsecase.GetEscrowStats(ctx)
	if err != nil {
		bt.Logger.Error("escrow stats sync failed", "error", err.Error())
		return
	}
	bt.Metrics.SetLocked(stats.ActiveEscrows, stats.TotalValueLocked)
}
