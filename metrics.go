package orderful

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderful_client",
			Name:      "requests_total",
			Help:      "API requests issued, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderful_client",
			Name:      "request_failures_total",
			Help:      "API requests that returned an error, by operation.",
		},
		[]string{"operation"},
	)
)

// observeRequest records one completed call in the client metrics.
func observeRequest(operation string, err error) {
	requestsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(operation).Inc()
	}
}
