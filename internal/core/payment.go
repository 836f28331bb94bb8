package core

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusNotStarted PaymentStatus = "NOT_STARTED"
	PaymentStatusInProgress PaymentStatus = "IN_PROGRESS"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusCanceled   PaymentStatus = "CANCELED"
)

// Order statuses owned by the remote order service. Only these two are
// interpreted here; anything else is treated as not payable.
const (
	OrderStatusOrdered   = "ORDERED"
	OrderStatusInPayment = "IN_PAYMENT"
)

// Payment represents a payment domain entity
type Payment struct {
	ID        uuid.UUID
	OrderID   string
	Amount    float64
	Method    string
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order is the read-only view of an order owned by the remote order service.
// It is never cached; every read goes back to the wire.
type Order struct {
	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
}

// IsTerminal checks if payment is in a terminal state
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusCanceled
}

// nextStatus is the lifecycle transition table. Statuses absent from the
// table have no outgoing advance edge.
var nextStatus = map[PaymentStatus]PaymentStatus{
	PaymentStatusNotStarted: PaymentStatusInProgress,
	PaymentStatusInProgress: PaymentStatusCompleted,
}

// NextStatus returns the status following s in the lifecycle
// NOT_STARTED -> IN_PROGRESS -> COMPLETED. Terminal statuses fail with
// ErrPaymentCompleted or ErrPaymentCanceled so callers can tell them apart.
func NextStatus(s PaymentStatus) (PaymentStatus, error) {
	if next, ok := nextStatus[s]; ok {
		return next, nil
	}
	switch s {
	case PaymentStatusCompleted:
		return "", ErrPaymentCompleted
	case PaymentStatusCanceled:
		return "", ErrPaymentCanceled
	default:
		return "", ErrUnknownStatus
	}
}

// CancelStatus returns CANCELED if s permits cancellation. Only NOT_STARTED
// and IN_PROGRESS do; cancellation of a terminal payment fails with the same
// distinct sentinels as NextStatus.
func CancelStatus(s PaymentStatus) (PaymentStatus, error) {
	switch s {
	case PaymentStatusNotStarted, PaymentStatusInProgress:
		return PaymentStatusCanceled, nil
	case PaymentStatusCompleted:
		return "", ErrPaymentCompleted
	case PaymentStatusCanceled:
		return "", ErrPaymentCanceled
	default:
		return "", ErrUnknownStatus
	}
}
