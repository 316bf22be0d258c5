package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubscribersCreated    prometheus.Counter
	AccessGrants          prometheus.Counter
	AccessChecks          prometheus.Counter
	ApplicationsSubmitted prometheus.Counter
	RequestLatency        *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SubscribersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fixlist_subscribers_created_total",
			Help: "Total number of new email subscribers",
		}),
		AccessGrants: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fixlist_access_grants_total",
			Help: "Total number of access grants, including idempotent re-grants",
		}),
		AccessChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fixlist_access_checks_total",
			Help: "Total number of access lookups",
		}),
		ApplicationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fixlist_audit_applications_total",
			Help: "Total number of audit applications received",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fixlist_http_request_duration_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"route", "method"}),
	}
}
