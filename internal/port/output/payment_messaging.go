package output

import (
	"time"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/core"
)

// Lifecycle event names carried on the payments exchange.
const (
	EventPaymentCreated   = "payment.created"
	EventPaymentCompleted = "payment.completed"
	EventPaymentCanceled  = "payment.canceled"
)

// PaymentEvent announces a payment lifecycle change to interested consumers
// (the audit worker, for one).
type PaymentEvent struct {
	Event     string             `json:"event"`
	PaymentID uuid.UUID          `json:"payment_id"`
	OrderID   string             `json:"order_id"`
	Status    core.PaymentStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

// PaymentMessaging is an output port (secondary port) for payment messaging
// Secondary adapters (RabbitMQ implementations) will implement this
type PaymentMessaging interface {
	// PublishPaymentEvent publishes a lifecycle event. Fire-and-forget from
	// the core's point of view: a publish failure never fails the operation
	// that produced the event.
	PublishPaymentEvent(evt PaymentEvent) error
	// Close closes the messaging connection
	Close() error
}
