package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// EscrowAuditEvent records every attempted transition, including rejected
// ones, next to the escrow record itself.
type EscrowAuditEvent struct {
	ID         uint   `gorm:"primaryKey"`
	EscrowID   string `gorm:"type:varchar(64);not null;index:idx_escrow_audit_events_escrow_id"`
	OrderID    string `gorm:"type:varchar(255);not null;index:idx_escrow_audit_events_order_id"`
	Transition string `gorm:"type:varchar(16);not null"`
	Status     string `gorm:"type:varchar(16);not null"`
	Amount     uint64 `gorm:"type:numeric(20,0);not null"`
	Succeeded  bool   `gorm:"not null"`
	Reason     string
	Timestamp  time.Time `gorm:"not null"`
}

func (EscrowAuditEvent) TableName() string { return "escrow_audit_events" }

type EscrowEventLogger interface {
	LogEscrowEvent(ctx context.Context, event EscrowAuditEvent) error
	EscrowEvents(ctx context.Context, escrowID string) ([]EscrowAuditEvent, error)
}

type PGEscrowEventLogger struct {
	db *gorm.DB
}

func NewPGEscrowEventLogger(db *gorm.DB) *PGEscrowEventLogger {
	return &PGEscrowEventLogger{db: db}
}

func (l *PGEscrowEventLogger) LogEscrowEvent(ctx context.Context, event EscrowAuditEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGEscrowEventLogger) EscrowEvents(ctx context.Context, escrowID string) ([]EscrowAuditEvent, error) {
	var events []EscrowAuditEvent
	if err := l.db.WithContext(ctx).
		Where("escrow_id = ?", escrowID).
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// OrderEvents returns the trail for an order, including initialize attempts
// that never produced an escrow record.
func (l *PGEscrowEventLogger) OrderEvents(ctx context.Context, orderID string) ([]EscrowAuditEvent, error) {
	var events []EscrowAuditEvent
	if err := l.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
