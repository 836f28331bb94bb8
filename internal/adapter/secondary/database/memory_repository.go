package database

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/output"
)

// InMemoryPaymentRepository is a mutex-protected repository for tests and
// local development. Insertion order is preserved for FindAll; Transition
// runs its mutation under the repository lock, giving the same per-row
// read-modify-write exclusion the GORM adapter gets from SELECT FOR UPDATE.
type InMemoryPaymentRepository struct {
	mu    sync.Mutex
	data  map[uuid.UUID]*core.Payment
	order []uuid.UUID
}

// NewInMemoryPaymentRepository creates an empty in-memory payment repository
func NewInMemoryPaymentRepository() *InMemoryPaymentRepository {
	return &InMemoryPaymentRepository{data: make(map[uuid.UUID]*core.Payment)}
}

var _ output.PaymentRepository = (*InMemoryPaymentRepository)(nil)

func (r *InMemoryPaymentRepository) Save(ctx context.Context, payment *core.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now

	if _, exists := r.data[payment.ID]; !exists {
		r.order = append(r.order, payment.ID)
	}
	cpy := *payment
	r.data[payment.ID] = &cpy
	return nil
}

func (r *InMemoryPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.data[id]
	if !ok {
		return nil, &core.NotFoundError{Entity: "payment", ID: id.String()}
	}
	cpy := *p
	return &cpy, nil
}

func (r *InMemoryPaymentRepository) FindAll(ctx context.Context) ([]*core.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payments := make([]*core.Payment, 0, len(r.order))
	for _, id := range r.order {
		cpy := *r.data[id]
		payments = append(payments, &cpy)
	}
	return payments, nil
}

func (r *InMemoryPaymentRepository) Transition(ctx context.Context, id uuid.UUID, apply func(*core.Payment) error) (*core.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.data[id]
	if !ok {
		return nil, &core.NotFoundError{Entity: "payment", ID: id.String()}
	}

	cpy := *p
	if err := apply(&cpy); err != nil {
		return nil, err
	}
	cpy.UpdatedAt = time.Now()
	r.data[id] = &cpy

	out := cpy
	return &out, nil
}
