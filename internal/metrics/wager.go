package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wagerTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_wager_requests_total",
			Help: "Total wager requests by result and game",
		},
		[]string{"result", "game"},
	)

	wagerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "casino_wager_request_duration_ms",
			Help:    "Wager request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"result", "game"},
	)
)

// RecordWager records business metrics for one wager call.
// result should be "success" or "fail".
func RecordWager(result, game string, started time.Time) {
	res := result
	if res != "success" {
		res = "fail"
	}

	wagerTotal.WithLabelValues(res, game).Inc()
	wagerDuration.WithLabelValues(res, game).Observe(float64(time.Since(started).Milliseconds()))
}
