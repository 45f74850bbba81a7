package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/notifyhub/sms-relay/internal/service"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	DispatchTotal   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sms_dispatch_total",
			Help: "Send requests handled, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),

		UpstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sms_upstream_request_seconds",
			Help:    "Latency of the single SMS gateway call made per request.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	reg.MustRegister(m.DispatchTotal, m.UpstreamLatency)
	return m
}

// Hooks returns the callbacks expected by service.MetricHooks.
// Requests that never reached the gateway are counted but not timed.
func (m *Metrics) Hooks() service.MetricHooks {
	return service.MetricHooks{
		OnDispatch: func(endpoint, outcome string, latency time.Duration) {
			m.DispatchTotal.WithLabelValues(endpoint, outcome).Inc()
			if latency > 0 {
				m.UpstreamLatency.WithLabelValues(endpoint).Observe(latency.Seconds())
			}
		},
	}
}
