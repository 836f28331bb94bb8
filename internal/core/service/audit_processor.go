package service

import (
	"log"
	"time"

	"github.com/microshop/payment-service/internal/port/output"
)

// AuditProcessor consumes payment lifecycle events from the broker and
// records them as an append-only audit trail.
type AuditProcessor struct {
	metrics output.MetricsSink
}

// NewAuditProcessor creates a new audit processor
func NewAuditProcessor(metrics output.MetricsSink) *AuditProcessor {
	return &AuditProcessor{metrics: metrics}
}

// HandleEvent records one lifecycle event. Always succeeds so the broker
// never redelivers an already-audited event.
func (a *AuditProcessor) HandleEvent(evt output.PaymentEvent) error {
	log.Printf("layer=worker component=audit event=%s payment_id=%s order_id=%s status=%s at=%s",
		evt.Event, evt.PaymentID, evt.OrderID, evt.Status, evt.Timestamp.UTC().Format(time.RFC3339))
	if a.metrics != nil {
		a.metrics.Inc("audited_events_total")
	}
	return nil
}
