// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubscriberSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_submissions_total",
			Help: "Total number of subscriber form submissions",
		},
		[]string{"result"},
	)

	StudentOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "student_operations_total",
			Help: "Total number of student store operations",
		},
		[]string{"operation"},
	)

	ImportedStudentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "imported_students_total",
			Help: "Total number of student rows loaded from CSV",
		},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
