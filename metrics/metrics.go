package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoststats_api_requests_total",
			Help: "Total number of stats API requests per operation and status code",
		},
		[]string{"operation", "code"},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hoststats_api_request_duration_seconds",
			Help:    "Stats API request duration in seconds per operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	TransportErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoststats_api_transport_errors_total",
			Help: "Total number of stats API requests that failed before a status was read",
		},
		[]string{"operation"},
	)
)

// ObserveRequest records a finished API request. A code of 0 marks
// a transport failure.
func ObserveRequest(operation string, code int, startedAt time.Time) {
	RequestDurationSeconds.WithLabelValues(operation).Observe(time.Since(startedAt).Seconds())
	if code == 0 {
		TransportErrorsTotal.WithLabelValues(operation).Inc()
		return
	}
	RequestsTotal.WithLabelValues(operation, strconv.Itoa(code)).Inc()
}

var (
	ScheduledJobLastRun = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hoststats_job_last_run_timestamp",
			Help: "Unix timestamp of the last completed run for a job",
		},
		[]string{"job"},
	)

	ScheduledJobLastDurationSeconds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hoststats_job_last_duration_seconds",
			Help: "Duration of the last completed run for a job",
		},
		[]string{"job"},
	)

	ScheduledJobFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoststats_job_failures_total",
			Help: "Total number of failed executions per job",
		},
		[]string{"job"},
	)
)

func UpdateJobMetrics(job string, startedAt time.Time, err error) {
	dur := time.Since(startedAt).Seconds()
	ScheduledJobLastDurationSeconds.WithLabelValues(job).Set(dur)
	ScheduledJobLastRun.WithLabelValues(job).Set(float64(time.Now().Unix()))
	if err != nil {
		ScheduledJobFailuresTotal.WithLabelValues(job).Inc()
	}
}
