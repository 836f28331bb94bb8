package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/constant/model/db"
	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/output"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository is a secondary adapter that implements PaymentRepository output port
type GormPaymentRepository struct {
	gormDB *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository
func NewGormPaymentRepository(gormDB *gorm.DB) output.PaymentRepository {
	return &GormPaymentRepository{gormDB: gormDB}
}

// toCore converts db.Payment to core.Payment
func toCore(p *db.Payment) *core.Payment {
	return &core.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    core.PaymentStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// fromCore converts core.Payment to db.Payment
func fromCore(p *core.Payment) *db.Payment {
	return &db.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    db.PaymentStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Save upserts a payment: insert when the ID is unset (GORM's BeforeCreate
// hook assigns it), update the existing row otherwise.
func (r *GormPaymentRepository) Save(ctx context.Context, payment *core.Payment) error {
	dbPayment := fromCore(payment)
	if err := r.gormDB.WithContext(ctx).Save(dbPayment).Error; err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	// Reflect identity and timestamps assigned by GORM hooks
	payment.ID = dbPayment.ID
	payment.CreatedAt = dbPayment.CreatedAt
	payment.UpdatedAt = dbPayment.UpdatedAt
	return nil
}

// FindByID retrieves a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Payment, error) {
	var dbPayment db.Payment
	if err := r.gormDB.WithContext(ctx).Where("id = ?", id).First(&dbPayment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return toCore(&dbPayment), nil
}

// FindAll retrieves every payment in insertion order
func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]*core.Payment, error) {
	var dbPayments []db.Payment
	if err := r.gormDB.WithContext(ctx).Order("created_at ASC").Find(&dbPayments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	payments := make([]*core.Payment, 0, len(dbPayments))
	for i := range dbPayments {
		payments = append(payments, toCore(&dbPayments[i]))
	}
	return payments, nil
}

// Transition atomically mutates one payment's status under a row lock.
// Uses SELECT FOR UPDATE so two concurrent transitions on the same payment
// cannot both observe the pre-transition state.
func (r *GormPaymentRepository) Transition(ctx context.Context, id uuid.UUID, apply func(*core.Payment) error) (*core.Payment, error) {
	var result *core.Payment
	err := r.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dbPayment db.Payment

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&dbPayment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &core.NotFoundError{Entity: "payment", ID: id.String()}
			}
			return fmt.Errorf("failed to lock payment: %w", err)
		}

		payment := toCore(&dbPayment)
		if err := apply(payment); err != nil {
			return err
		}

		dbPayment.Status = db.PaymentStatus(payment.Status)
		if err := tx.Save(&dbPayment).Error; err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		result = toCore(&dbPayment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
