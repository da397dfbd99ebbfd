package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	payments           *prometheus.CounterVec
	validationFailures prometheus.Counter
	bankErrors         *prometheus.CounterVec
	bankDuration       prometheus.Histogram
	droppedEvents      prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "payments_total",
			Help:      "Processed payments by resulting status.",
		}, []string{"status"}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "validation_failures_total",
			Help:      "Payment requests rejected by validation.",
		}),
		bankErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "bank_errors_total",
			Help:      "Bank calls that produced no authorization decision.",
		}, []string{"reason"}),
		bankDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "bank_request_duration_seconds",
			Help:      "Duration of acquiring bank calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		droppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "payment_events_dropped_total",
			Help:      "Payment events dropped because the queue was full.",
		}),
	}

	reg.MustRegister(m.payments, m.validationFailures, m.bankErrors, m.bankDuration, m.droppedEvents)

	return m
}

func (m *Metrics) PaymentProcessed(status string) {
	m.payments.WithLabelValues(status).Inc()
}

func (m *Metrics) ValidationFailed() {
	m.validationFailures.Inc()
}

func (m *Metrics) BankFailed(reason string) {
	m.bankErrors.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveBankCall(started time.Time) {
	m.bankDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) EventDropped() {
	m.droppedEvents.Inc()
}
