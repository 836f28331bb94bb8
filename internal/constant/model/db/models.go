package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusNotStarted PaymentStatus = "NOT_STARTED"
	PaymentStatusInProgress PaymentStatus = "IN_PROGRESS"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusCanceled   PaymentStatus = "CANCELED"
)

// Payment represents a payment entity in the database. OrderID references an
// order owned by the remote order service; it is non-null and never
// reassigned after insert. Canceled payments keep their row: cancellation is
// a status write, not a delete.
type Payment struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   string        `gorm:"type:varchar(64);not null;index" json:"order_id"`
	Amount    float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method    string        `gorm:"type:varchar(32)" json:"method"`
	Status    PaymentStatus `gorm:"type:varchar(20);not null;check:status IN ('NOT_STARTED','IN_PROGRESS','COMPLETED','CANCELED')" json:"status"`
	CreatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate is a GORM hook that runs before creating a record
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return nil
}

// BeforeUpdate is a GORM hook that runs before updating a record
func (p *Payment) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// IsTerminal checks if payment is in a terminal state
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusCanceled
}
