package output

// Counter names incremented by the core service.
const (
	CounterCompletedPayments = "completed_payments_total"
)

// MetricsSink is an output port for counters. Passed into the service at
// construction; increments must be safe under concurrent callers.
type MetricsSink interface {
	Inc(name string)
}
