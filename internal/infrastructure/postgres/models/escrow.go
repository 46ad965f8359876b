package models

import "time"

type EscrowModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	OrderID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_escrows_order_id"`
	Buyer     string    `gorm:"type:varchar(255);not null;index:idx_escrows_buyer"`
	Seller    string    `gorm:"type:varchar(255);not null;index:idx_escrows_seller"`
	Amount    uint64    `gorm:"type:numeric(20,0);not null"`
	Status    string    `gorm:"type:varchar(16);not null;index:idx_escrows_status"`
	CreatedAt time.Time `gorm:"index:idx_escrows_created_at"`
	UpdatedAt time.Time
	SettledAt *time.Time
}

func (EscrowModel) TableName() string { return "escrows" }
