package output

import (
	"context"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/core"
)

// PaymentRepository is an output port (secondary port) for payment data access
// Secondary adapters (database implementations) will implement this
type PaymentRepository interface {
	// Save persists a payment: insert if new, update if existing, identity
	// preserved. Storage assigns the ID on first insert.
	Save(ctx context.Context, payment *core.Payment) error

	// FindByID retrieves a payment by its ID. Returns *core.NotFoundError
	// when no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*core.Payment, error)

	// FindAll retrieves every stored payment in insertion order.
	FindAll(ctx context.Context) ([]*core.Payment, error)

	// Transition applies a status mutation under per-row read-modify-write
	// atomicity (row lock or equivalent), so concurrent transitions on the
	// same payment cannot both read the same pre-transition state. If apply
	// returns an error nothing is written and the error is returned as-is.
	Transition(ctx context.Context, id uuid.UUID, apply func(*core.Payment) error) (*core.Payment, error)
}
