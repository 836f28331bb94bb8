package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CounterSource provides a point-in-time view of the counter registry.
type CounterSource interface {
	Snapshot() map[string]int64
}

// MetricsHandler exposes the counter registry as JSON
type MetricsHandler struct {
	counters CounterSource
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(counters CounterSource) *MetricsHandler {
	return &MetricsHandler{counters: counters}
}

// GetMetrics returns a snapshot of all counters
func (h *MetricsHandler) GetMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.counters.Snapshot())
}
