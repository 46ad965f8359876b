package setup

import (
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/identity"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/notifier"
	usecase "github.com/LavaJover/shvark-escrow-service/internal/usecase/escrow"
)

type UseCases struct {
	EscrowUsecase usecase.EscrowUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	// nil *KafkaPublisher внутри интерфейса не равен nil
	var eventPublisher usecase.EventPublisher
	if deps.EscrowPublisher != nil {
		eventPublisher = deps.EscrowPublisher
	}

	escrowUsecase := usecase.NewDefaultEscrowUsecase(
		deps.Repositories.EscrowRepo,
		deps.Repositories.Ledger,
		identity.NewContextSignerVerifier(),
		eventPublisher,
		deps.Repositories.EventLogger,
		deps.Metrics,
		deps.Logger,
	)

	if deps.Config.Callback.URL != "" {
		escrowUsecase.Callbacks = notifier.NewCallbackNotifier(
			deps.Config.Callback.URL,
			deps.Config.Callback.Secret,
			deps.Config.Callback.Timeout,
			deps.Logger,
		)
	}

	return &UseCases{
		EscrowUsecase: escrowUsecase,
	}
}
