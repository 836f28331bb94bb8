package orderclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/output"
)

const defaultTimeout = 5 * time.Second

// HTTPOrderClient is a secondary adapter that implements the OrderClient
// output port against the order service's REST API. It is a thin reporter of
// what happened on the wire: a 404 comes back as a non-transient
// *core.RemoteError, connection failures, timeouts and every other non-2xx
// as a transient one. No retries live here.
type HTTPOrderClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPOrderClient creates an order client for the given base URL
// (e.g. http://order-service:8300/api/v1). A zero timeout falls back to the
// default.
func NewHTTPOrderClient(baseURL string, timeout time.Duration) output.OrderClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPOrderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchOrder retrieves the live order view via GET /orders/{id}
func (c *HTTPOrderClient) FetchOrder(ctx context.Context, orderID string) (*core.Order, error) {
	url := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &core.RemoteError{OrderID: orderID, Transient: false, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &core.RemoteError{OrderID: orderID, Transient: true, Err: err}
	}
	defer resp.Body.Close()

	if err := classifyStatus(orderID, resp.StatusCode); err != nil {
		return nil, err
	}

	var order core.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, &core.RemoteError{OrderID: orderID, Transient: true, Err: fmt.Errorf("decode order response: %w", err)}
	}
	return &order, nil
}

// AdvanceOrderStatus asks the order service to move the order into its next
// state via PATCH /orders/{id}/status (empty body)
func (c *HTTPOrderClient) AdvanceOrderStatus(ctx context.Context, orderID string) error {
	url := fmt.Sprintf("%s/orders/%s/status", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, nil)
	if err != nil {
		return &core.RemoteError{OrderID: orderID, Transient: false, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &core.RemoteError{OrderID: orderID, Transient: true, Err: err}
	}
	defer resp.Body.Close()

	return classifyStatus(orderID, resp.StatusCode)
}

// classifyStatus maps a response status to the two-valued failure
// classification: 2xx ok, 404 permanent, everything else transient.
func classifyStatus(orderID string, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return &core.RemoteError{OrderID: orderID, Transient: false, Err: fmt.Errorf("order %s not found (404)", orderID)}
	default:
		return &core.RemoteError{OrderID: orderID, Transient: true, Err: fmt.Errorf("order service returned status %d", status)}
	}
}
