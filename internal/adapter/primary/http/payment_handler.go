package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/input"
)

// PaymentHandler is a primary adapter (HTTP handler)
type PaymentHandler struct {
	paymentService input.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService input.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentRequest represents the HTTP request to create a payment
type CreatePaymentRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status,omitempty"`
}

// OrderView represents the attached live order state
type OrderView struct {
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

// PaymentResponse represents the HTTP response for a payment
type PaymentResponse struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"order_id"`
	Amount    float64    `json:"amount"`
	Method    string     `json:"method,omitempty"`
	Status    string     `json:"status"`
	Order     *OrderView `json:"order,omitempty"`
	CreatedAt string     `json:"created_at"`
}

// CreatePayment handles payment creation
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	serviceReq := input.CreatePaymentRequest{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  core.PaymentStatus(req.Status),
	}

	response, err := h.paymentService.Create(c.Request().Context(), serviceReq)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toHTTPResponse(response))
}

// ListPayments handles the filtered listing of payments whose live order
// status is IN_PAYMENT
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	responses, err := h.paymentService.ListInPayment(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]PaymentResponse, 0, len(responses))
	for i := range responses {
		out = append(out, *toHTTPResponse(&responses[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetPayment handles payment retrieval by ID
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid payment ID",
		})
	}

	response, err := h.paymentService.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toHTTPResponse(response))
}

// AdvancePayment moves a payment one step along its lifecycle
func (h *PaymentHandler) AdvancePayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid payment ID",
		})
	}

	response, err := h.paymentService.Advance(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toHTTPResponse(response))
}

// CancelPayment soft-deletes a payment by moving it into CANCELED
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid payment ID",
		})
	}

	if err := h.paymentService.Cancel(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// writeError maps the service error taxonomy onto HTTP statuses.
func writeError(c echo.Context, err error) error {
	var (
		validation *core.ValidationError
		notFound   *core.NotFoundError
		dependency *core.DependencyError
		exhausted  *core.ExhaustedError
	)
	switch {
	case errors.As(err, &validation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validation.Error()})
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFound.Error()})
	case errors.As(err, &exhausted):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": exhausted.Error()})
	case errors.As(err, &dependency):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": dependency.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func toHTTPResponse(r *input.PaymentResponse) *PaymentResponse {
	resp := &PaymentResponse{
		ID:        r.ID.String(),
		OrderID:   r.OrderID,
		Amount:    r.Amount,
		Method:    r.Method,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.Order.OrderID != "" {
		resp.Order = &OrderView{
			OrderID:     r.Order.OrderID,
			OrderStatus: r.Order.OrderStatus,
		}
	}
	return resp
}
