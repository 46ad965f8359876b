package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	publisher "github.com/LavaJover/shvark-escrow-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/notifier"
	escrowdto "github.com/LavaJover/shvark-escrow-service/internal/usecase/dto/escrow"
)

type EscrowUsecase interface {
	InitializeEscrow(ctx context.Context, input *escrowdto.InitializeEscrowInput) (*domain.Escrow, error)
	ConfirmEscrow(ctx context.Context, escrowID string) (*domain.Escrow, error)
	CancelEscrow(ctx context.Context, escrowID string) (*domain.Escrow, error)

	GetEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error)
	GetEscrowByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error)
	ListEscrows(ctx context.Context, input *escrowdto.ListEscrowsInput) (*escrowdto.ListEscrowsOutput, error)
	GetEscrowStats(ctx context.Context) (*domain.EscrowStats, error)
}

type EventPublisher interface {
	PublishEscrow(ctx context.Context, event publisher.EscrowEvent) error
}

type CallbackSender interface {
	SendCallback(ctx context.Context, payload notifier.CallbackPayload)
}

type DefaultEscrowUsecase struct {
	EscrowRepo  domain.EscrowRepository
	Ledger      domain.Ledger
	Signers     domain.SignerVerifier
	Publisher   EventPublisher
	EventLogger logger.EscrowEventLogger
	Metrics     *metrics.EscrowMetrics
	Logger      *slog.Logger
	Callbacks   CallbackSender

	now func() time.Time
}

// NewDefaultEscrowUsecase wires the state machine. publisher, eventLogger
// and escrowMetrics may be nil. Callbacks is set separately when configured.
func NewDefaultEscrowUsecase(
	escrowRepo domain.EscrowRepository,
	ledger domain.Ledger,
	signers domain.SignerVerifier,
	eventPublisher EventPublisher,
	eventLogger logger.EscrowEventLogger,
	escrowMetrics *metrics.EscrowMetrics,
	log *slog.Logger,
) *DefaultEscrowUsecase {
	if log == nil {
		log = slog.Default()
	}

	return &DefaultEscrowUsecase{
		EscrowRepo:  escrowRepo,
		Ledger:      ledger,
		Signers:     signers,
		Publisher:   eventPublisher,
		EventLogger: eventLogger,
		Metrics:     escrowMetrics,
		Logger:      log.With("component", "escrow"),
		now:         time.Now,
	}
}
