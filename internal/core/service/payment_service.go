package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/input"
	"github.com/microshop/payment-service/internal/port/output"
)

var validStatuses = map[core.PaymentStatus]bool{
	core.PaymentStatusNotStarted: true,
	core.PaymentStatusInProgress: true,
	core.PaymentStatusCompleted:  true,
	core.PaymentStatusCanceled:   true,
}

// PaymentServiceImpl implements the PaymentService input port. It coordinates
// the remote order service, the payment store, the lifecycle rules, and the
// retry policy around the remote calls.
type PaymentServiceImpl struct {
	paymentRepo output.PaymentRepository
	orders      output.OrderClient
	paymentMsg  output.PaymentMessaging
	metrics     output.MetricsSink
	retry       RetryPolicy
}

// NewPaymentService creates a new payment service. paymentMsg and metrics may
// be nil; the service then skips event publication and counting.
func NewPaymentService(
	paymentRepo output.PaymentRepository,
	orders output.OrderClient,
	paymentMsg output.PaymentMessaging,
	metrics output.MetricsSink,
	retry RetryPolicy,
) input.PaymentService {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		orders:      orders,
		paymentMsg:  paymentMsg,
		metrics:     metrics,
		retry:       retry,
	}
}

// Create creates a payment bound to a remote order. The whole remote
// sequence (fetch order, persist payment, advance order status) is retried
// on transient order-service failures, up to the policy bound; validation
// failures and remote 404s are never retried. The payment row is persisted
// before the order-status PATCH, so an exhausted retry can leave a
// NOT_STARTED payment whose order was never advanced. That window is
// intentional: the row is evidence of the attempt, not hidden state.
func (s *PaymentServiceImpl) Create(ctx context.Context, req input.CreatePaymentRequest) (*input.PaymentResponse, error) {
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return nil, &core.ValidationError{Reason: "order id is required"}
	}
	if req.Status == "" {
		req.Status = core.PaymentStatusNotStarted
	}
	if !validStatuses[req.Status] {
		return nil, &core.ValidationError{Reason: fmt.Sprintf("invalid initial payment status %q", req.Status)}
	}

	payment := &core.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  req.Status,
	}

	var lastErr error
	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(s.retry.Delay(attempt - 1))
		}

		resp, err := s.createOnce(ctx, payment)
		if err == nil {
			return resp, nil
		}

		var remote *core.RemoteError
		if errors.As(err, &remote) && remote.Transient {
			lastErr = remote.Err
			log.Printf("layer=service component=payment method=Create order_id=%s attempt=%d/%d err=%v",
				req.OrderID, attempt, s.retry.MaxAttempts, err)
			continue
		}
		return nil, err
	}

	log.Printf("layer=service component=payment method=Create order_id=%s err=retries exhausted cause=%v", req.OrderID, lastErr)
	return nil, &core.ExhaustedError{OrderID: req.OrderID, Err: lastErr}
}

// createOnce runs one attempt of the create sequence. Transient remote
// failures come back as *core.RemoteError for the caller's retry loop;
// everything else is already in its final, caller-facing shape.
func (s *PaymentServiceImpl) createOnce(ctx context.Context, payment *core.Payment) (*input.PaymentResponse, error) {
	order, err := s.orders.FetchOrder(ctx, payment.OrderID)
	if err != nil {
		var remote *core.RemoteError
		if errors.As(err, &remote) && !remote.Transient {
			return nil, &core.DependencyError{OrderID: payment.OrderID, Err: remote.Err}
		}
		return nil, err
	}

	if order.OrderStatus != core.OrderStatusOrdered {
		return nil, &core.ValidationError{
			Reason: fmt.Sprintf("cannot start a payment for order %s: status is %s, not %s",
				payment.OrderID, order.OrderStatus, core.OrderStatusOrdered),
		}
	}

	// Save is an upsert: on a retry after a failed status PATCH the payment
	// already carries its ID and the same row is written again.
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.orders.AdvanceOrderStatus(ctx, payment.OrderID); err != nil {
		var remote *core.RemoteError
		if errors.As(err, &remote) && !remote.Transient {
			// The order vanished between the fetch and the PATCH.
			return nil, &core.DependencyError{OrderID: payment.OrderID, Err: remote.Err}
		}
		return nil, err
	}

	s.publish(output.EventPaymentCreated, payment)

	resp := toResponse(payment, *order)
	return &resp, nil
}

// ListInPayment returns every stored payment whose live order status is
// IN_PAYMENT, with the fresh order view attached. Best-effort: a payment
// whose order cannot be fetched is logged and skipped, never aborting the
// listing. Duplicates by value are dropped; store order is preserved.
func (s *PaymentServiceImpl) ListInPayment(ctx context.Context) ([]input.PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[input.PaymentResponse]struct{}, len(payments))
	result := make([]input.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		order, err := s.orders.FetchOrder(ctx, p.OrderID)
		if err != nil {
			log.Printf("layer=service component=payment method=ListInPayment payment_id=%s order_id=%s skipped err=%v",
				p.ID, p.OrderID, err)
			continue
		}
		if !strings.EqualFold(order.OrderStatus, core.OrderStatusInPayment) {
			continue
		}
		resp := toResponse(p, *order)
		if _, dup := seen[resp]; dup {
			continue
		}
		seen[resp] = struct{}{}
		result = append(result, resp)
	}
	return result, nil
}

// Get retrieves one payment with its live order view. Unlike the list path a
// remote failure here is fatal: the caller asked for this exact item.
func (s *PaymentServiceImpl) Get(ctx context.Context, id uuid.UUID) (*input.PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FetchOrder(ctx, p.OrderID)
	if err != nil {
		log.Printf("layer=service component=payment method=Get payment_id=%s order_id=%s err=%v", id, p.OrderID, err)
		var remote *core.RemoteError
		if errors.As(err, &remote) {
			err = remote.Err
		}
		return nil, &core.DependencyError{OrderID: p.OrderID, Err: err}
	}

	resp := toResponse(p, *order)
	return &resp, nil
}

// Advance moves a payment one lifecycle step. Purely local: no remote call.
// The completed-payments counter is incremented only after the transition
// has persisted, so a failed write cannot count.
func (s *PaymentServiceImpl) Advance(ctx context.Context, id uuid.UUID) (*input.PaymentResponse, error) {
	updated, err := s.paymentRepo.Transition(ctx, id, func(p *core.Payment) error {
		next, err := core.NextStatus(p.Status)
		if err != nil {
			return &core.ValidationError{Reason: fmt.Sprintf("cannot advance payment %s: %v", id, err), Err: err}
		}
		p.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == core.PaymentStatusCompleted {
		if s.metrics != nil {
			s.metrics.Inc(output.CounterCompletedPayments)
		}
		s.publish(output.EventPaymentCompleted, updated)
	}

	resp := toResponse(updated, core.Order{})
	return &resp, nil
}

// Cancel soft-deletes a payment: a status write into CANCELED, never a row
// removal. Canceling a completed payment and re-canceling a canceled one
// fail with distinguishable messages.
func (s *PaymentServiceImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	updated, err := s.paymentRepo.Transition(ctx, id, func(p *core.Payment) error {
		next, err := core.CancelStatus(p.Status)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrPaymentCompleted):
				return &core.ValidationError{Reason: "cannot cancel a completed payment", Err: err}
			case errors.Is(err, core.ErrPaymentCanceled):
				return &core.ValidationError{Reason: "payment is already canceled", Err: err}
			default:
				return &core.ValidationError{Reason: fmt.Sprintf("cannot cancel payment %s: %v", id, err), Err: err}
			}
		}
		p.Status = next
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("layer=service component=payment method=Cancel payment_id=%s canceled", id)
	s.publish(output.EventPaymentCanceled, updated)
	return nil
}

func (s *PaymentServiceImpl) publish(event string, p *core.Payment) {
	if s.paymentMsg == nil {
		return
	}
	evt := output.PaymentEvent{
		Event:     event,
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		Status:    p.Status,
		Timestamp: time.Now(),
	}
	if err := s.paymentMsg.PublishPaymentEvent(evt); err != nil {
		log.Printf("layer=service component=payment event=%s payment_id=%s publish err=%v", event, p.ID, err)
	}
}

func toResponse(p *core.Payment, order core.Order) input.PaymentResponse {
	return input.PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		Order:     order,
		CreatedAt: p.CreatedAt,
	}
}
