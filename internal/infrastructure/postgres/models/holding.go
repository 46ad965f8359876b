package models

import "time"

type HoldingModel struct {
	ID        string `gorm:"primaryKey;type:varchar(255)"`
	Balance   uint64 `gorm:"type:numeric(20,0);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (HoldingModel) TableName() string { return "holdings" }

// LedgerTransferModel is the append-only journal of applied transfers.
type LedgerTransferModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	FromHolding string    `gorm:"type:varchar(255);not null;index:idx_ledger_transfers_from"`
	ToHolding   string    `gorm:"type:varchar(255);not null;index:idx_ledger_transfers_to"`
	Amount      uint64    `gorm:"type:numeric(20,0);not null"`
	CreatedAt   time.Time
}

func (LedgerTransferModel) TableName() string { return "ledger_transfers" }
