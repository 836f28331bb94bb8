package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/output"
	"github.com/stretchr/testify/mock"
)

type OrderClientMock struct {
	mock.Mock
}

func (m *OrderClientMock) FetchOrder(ctx context.Context, orderID string) (*core.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Order), args.Error(1)
}

func (m *OrderClientMock) AdvanceOrderStatus(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MessagingMock struct {
	mock.Mock
}

func (m *MessagingMock) PublishPaymentEvent(evt output.PaymentEvent) error {
	args := m.Called(evt)
	return args.Error(0)
}

func (m *MessagingMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) Save(ctx context.Context, p *core.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *RepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*core.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Payment), args.Error(1)
}

func (m *RepositoryMock) FindAll(ctx context.Context) ([]*core.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*core.Payment), args.Error(1)
}

func (m *RepositoryMock) Transition(ctx context.Context, id uuid.UUID, apply func(*core.Payment) error) (*core.Payment, error) {
	args := m.Called(ctx, id, apply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Payment), args.Error(1)
}
