package postgres

import (
	"log"

	"github.com/LavaJover/shvark-escrow-service/internal/config"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.EscrowConfig) *gorm.DB {
	dsn := cfg.EscrowDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err)
	}
	if cfg.EscrowDB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.EscrowDB.MaxOpenConns)
	}

	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
		return db
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto migrate: %v\n", err)
	}

	return db
}

// AutoMigrate creates the escrow schema from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.EscrowModel{},
		&models.HoldingModel{},
		&models.LedgerTransferModel{},
		&logger.EscrowAuditEvent{},
	)
}
