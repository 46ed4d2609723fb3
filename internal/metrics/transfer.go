package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transferTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_transfer_requests_total",
			Help: "Total transfer requests by result and kind",
		},
		[]string{"result", "kind"},
	)

	transferDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "casino_transfer_request_duration_ms",
			Help:    "Transfer request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"result", "kind"},
	)
)

// RecordTransfer records business metrics for one deposit/withdraw call.
func RecordTransfer(result, kind string, started time.Time) {
	res := result
	if res != "success" {
		res = "fail"
	}

	transferTotal.WithLabelValues(res, kind).Inc()
	transferDuration.WithLabelValues(res, kind).Observe(float64(time.Since(started).Milliseconds()))
}
