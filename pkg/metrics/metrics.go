package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	QuotesSubmitted prometheus.Counter
	QuoteDecisions  *prometheus.CounterVec

	NotificationsTotal *prometheus.CounterVec
	OutboxDepth        prometheus.Gauge
	OutboxDropped      prometheus.Counter
}

// NewCollector registers the service metrics on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func NewCollector(serviceName string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: f.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		QuotesSubmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "quotes",
			Name:      "submitted_total",
			Help:      "Total quotes submitted by pharmacies.",
		}),

		QuoteDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "quotes",
			Name:      "decisions_total",
			Help:      "Quote transitions by resulting status.",
		}, []string{"status"}),

		NotificationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "notifications",
			Name:      "total",
			Help:      "Notification deliveries by kind and outcome.",
		}, []string{"kind", "outcome"}),

		OutboxDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "outbox",
			Name:      "depth",
			Help:      "Messages waiting in the mail outbox.",
		}),

		OutboxDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "outbox",
			Name:      "dropped_total",
			Help:      "Messages rejected because the outbox was full. Alert if non-zero.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
