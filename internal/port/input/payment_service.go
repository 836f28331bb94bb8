package input

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/core"
)

// PaymentService is an input port (primary port) for payment operations
// Primary adapters (HTTP handlers) will use this
type PaymentService interface {
	// Create creates a payment bound to a remote order, advancing the order
	// into IN_PAYMENT on success.
	Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error)

	// ListInPayment returns payments whose live order status is IN_PAYMENT.
	// Best-effort: payments whose order cannot be fetched are skipped.
	ListInPayment(ctx context.Context) ([]PaymentResponse, error)

	// Get retrieves a payment by ID with its live order view attached.
	Get(ctx context.Context, id uuid.UUID) (*PaymentResponse, error)

	// Advance moves a payment one step along its lifecycle.
	Advance(ctx context.Context, id uuid.UUID) (*PaymentResponse, error)

	// Cancel soft-deletes a payment by moving it into CANCELED.
	Cancel(ctx context.Context, id uuid.UUID) error
}

// CreatePaymentRequest represents the request to create a payment
type CreatePaymentRequest struct {
	OrderID string
	Amount  float64
	Method  string
	// Status is the caller-chosen initial status; empty means NOT_STARTED.
	Status core.PaymentStatus
}

// PaymentResponse represents the response for a payment, carrying the freshly
// fetched order view where the operation attached one.
type PaymentResponse struct {
	ID        uuid.UUID
	OrderID   string
	Amount    float64
	Method    string
	Status    core.PaymentStatus
	Order     core.Order
	CreatedAt time.Time
}
