package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	associationOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "association_operations_total",
			Help: "Association service operations by outcome",
		},
		[]string{"operation", "status"},
	)

	costRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cost_job_runs_total",
			Help: "Cost recomputation runs by outcome",
		},
		[]string{"status"},
	)

	costEventsRecomputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cost_job_events_recomputed_total",
			Help: "Events whose cost was recomputed and saved",
		},
	)

	costRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cost_job_run_duration_seconds",
			Help:    "Duration of cost recomputation runs",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
	)
)

func RecordAssociation(operation string, err error) {
	associationOperations.WithLabelValues(operation, status(err)).Inc()
}

func RecordCostRun(started time.Time, recomputed int, err error) {
	costRuns.WithLabelValues(status(err)).Inc()
	costEventsRecomputed.Add(float64(recomputed))
	costRunDuration.Observe(time.Since(started).Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
