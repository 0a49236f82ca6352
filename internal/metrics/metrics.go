package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	OutcomeSuccess         = "success"
	OutcomeModelReported   = "model_reported"
	OutcomeProviderError   = "provider_error"
	OutcomeEmptyResponse   = "empty_response"
	OutcomeMalformed       = "malformed"
	OutcomeSchemaViolation = "schema_violation"
)

type Metrics struct {
	Registry *prometheus.Registry

	analyses        *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	webhookEvents   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitlens",
			Name:      "analyses_total",
			Help:      "Model round trips by analysis kind, provider and outcome.",
		}, []string{"kind", "provider", "outcome"}),
		gatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fitlens",
			Name:      "gateway_duration_seconds",
			Help:      "Latency of model gateway calls.",
			Buckets:   []float64{0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"kind", "provider"}),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitlens",
			Name:      "billing_webhook_events_total",
			Help:      "Verified billing webhook events by type.",
		}, []string{"processor", "type"}),
	}
	reg.MustRegister(
		m.analyses,
		m.gatewayDuration,
		m.webhookEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// The record methods accept a nil receiver so callers can run without metrics.

func (m *Metrics) ObserveAnalysis(kind, provider, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(kind, provider, outcome).Inc()
	m.gatewayDuration.WithLabelValues(kind, provider).Observe(took.Seconds())
}

func (m *Metrics) ObserveWebhook(processor, eventType string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(processor, eventType).Inc()
}
