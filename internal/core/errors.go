package core

import (
	"errors"
	"fmt"
)

// Lifecycle sentinels. Distinct so a caller can tell an illegal transition on
// a completed payment from one on an already-canceled payment.
var (
	ErrPaymentCompleted = errors.New("payment is already completed")
	ErrPaymentCanceled  = errors.New("payment is already canceled")
	ErrUnknownStatus    = errors.New("unknown payment status")
)

// ValidationError means caller-supplied input violates a precondition.
// Never retried. Err, when set, keeps the underlying lifecycle sentinel
// reachable through errors.Is.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError means a referenced payment or order does not exist.
// Never retried.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// RemoteError classifies a failed order-service call. It is produced only by
// the order client, which reports what happened on the wire and nothing more:
// Transient marks failures worth retrying (connection loss, timeout, 5xx);
// a 404 comes back with Transient false. Retry decisions belong to the
// coordinator, which branches on this flag rather than on error types.
type RemoteError struct {
	OrderID   string
	Transient bool
	Err       error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("order service call for order %s failed: %v", e.OrderID, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// DependencyError is a permanent remote failure surfaced by the coordinator:
// the order vanished mid-sequence, or a single-item lookup could not attach
// its order view. Never retried.
type DependencyError struct {
	OrderID string
	Err     error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("order service dependency failed for order %s: %v", e.OrderID, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// ExhaustedError is terminal: every retry attempt against the order service
// failed transiently. It carries the original cause and the offending order
// id for diagnosis.
type ExhaustedError struct {
	OrderID string
	Err     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("order service unavailable after all retry attempts for order %s: %v", e.OrderID, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}
