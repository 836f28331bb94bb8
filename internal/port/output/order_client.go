package output

import (
	"context"

	"github.com/microshop/payment-service/internal/core"
)

// OrderClient is an output port (secondary port) for the remote order service.
// It holds no retry, caching, or backoff logic: implementations report what
// happened on the wire, classified through *core.RemoteError, and callers
// decide what to do about it.
type OrderClient interface {
	// FetchOrder retrieves the live view of an order.
	FetchOrder(ctx context.Context, orderID string) (*core.Order, error)

	// AdvanceOrderStatus asks the order service to move the order into its
	// next state (e.g. into IN_PAYMENT).
	AdvanceOrderStatus(ctx context.Context, orderID string) error
}
