package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/microshop/payment-service/internal/adapter/secondary/metrics"
	"github.com/microshop/payment-service/internal/core"
	"github.com/microshop/payment-service/internal/port/output"
	"github.com/stretchr/testify/require"
)

func TestAuditProcessor_HandleEvent(t *testing.T) {
	counters := metrics.NewCounters()
	processor := NewAuditProcessor(counters)

	evt := output.PaymentEvent{
		Event:     output.EventPaymentCompleted,
		PaymentID: uuid.New(),
		OrderID:   "o1",
		Status:    core.PaymentStatusCompleted,
		Timestamp: time.Now(),
	}

	require.NoError(t, processor.HandleEvent(evt))
	require.NoError(t, processor.HandleEvent(evt))
	require.Equal(t, int64(2), counters.Value("audited_events_total"))
}

func TestAuditProcessor_NilMetrics(t *testing.T) {
	processor := NewAuditProcessor(nil)
	require.NoError(t, processor.HandleEvent(output.PaymentEvent{Event: output.EventPaymentCreated}))
}
