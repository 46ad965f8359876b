package setup

import (
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-escrow-service/internal/client"
	"github.com/LavaJover/shvark-escrow-service/internal/config"
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/identity"
	publisher "github.com/LavaJover/shvark-escrow-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config          *config.EscrowConfig
	DB              *gorm.DB
	Logger          *slog.Logger
	EscrowPublisher *publisher.KafkaPublisher
	TokenVerifier   *identity.TokenVerifier
	Registry        *prometheus.Registry
	Metrics         *metrics.EscrowMetrics
	Repositories    *Repositories
}

type Repositories struct {
	EscrowRepo  domain.EscrowRepository
	Ledger      domain.Ledger
	EventLogger logger.EscrowEventLogger
}

func InitializeDependencies(cfg *config.EscrowConfig, log *slog.Logger) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)
	return NewDependencies(cfg, db, log)
}

// NewDependencies wires everything that hangs off an open database.
func NewDependencies(cfg *config.EscrowConfig, db *gorm.DB, log *slog.Logger) (*Dependencies, error) {
	ledger, err := initLedger(cfg, db)
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}

	escrowPublisher, err := initEscrowPublisher(cfg)
	if err != nil {
		return nil, fmt.Errorf("escrow publisher: %w", err)
	}

	tokenVerifier, err := identity.NewTokenVerifier(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("token verifier: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repos := &Repositories{
		EscrowRepo:  repository.NewDefaultEscrowRepository(db),
		Ledger:      ledger,
		EventLogger: logger.NewPGEscrowEventLogger(db),
	}

	return &Dependencies{
		Config:          cfg,
		DB:              db,
		Logger:          log,
		EscrowPublisher: escrowPublisher,
		TokenVerifier:   tokenVerifier,
		Registry:        registry,
		Metrics:         metrics.NewEscrowMetrics(registry),
		Repositories:    repos,
	}, nil
}

func initLedger(cfg *config.EscrowConfig, db *gorm.DB) (domain.Ledger, error) {
	switch cfg.Ledger.Backend {
	case "", config.LedgerBackendPostgres:
		return repository.NewDefaultLedgerRepository(db), nil
	case config.LedgerBackendWalletService:
		return client.NewWalletClient(
			fmt.Sprintf("%s:%s", cfg.WalletService.Host, cfg.WalletService.Port),
			cfg.WalletService.Timeout,
		)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}

// initEscrowPublisher returns nil when kafka is disabled.
func initEscrowPublisher(cfg *config.EscrowConfig) (*publisher.KafkaPublisher, error) {
	if !cfg.KafkaService.Enabled {
		return nil, nil
	}
	config := publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Topic:      cfg.KafkaService.Topic,
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
	return publisher.NewKafkaPublisher(config)
}

func (d *Dependencies) Close() error {
	if d.EscrowPublisher != nil {
		return d.EscrowPublisher.Close()
	}
	return nil
}
