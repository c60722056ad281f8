package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Booking related metrics
	BookingAttempts  prometheus.Counter
	BookingConflicts prometheus.Counter
	SlotQueries      prometheus.Counter
	Cancellations    prometheus.Counter
	CascadeDeletes   prometheus.Counter

	// Database metrics
	DatabaseOperations *prometheus.CounterVec
	DatabaseLatency    *prometheus.HistogramVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BookingAttempts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_attempts_total",
			Help:      "Total number of reservation booking attempts",
		}),
		BookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected by the slot uniqueness constraint",
		}),
		SlotQueries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_queries_total",
			Help:      "Total number of availability computations",
		}),
		Cancellations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Total number of reservation cancellations",
		}),
		CascadeDeletes: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_deletes_total",
			Help:      "Total number of cascading patient deletions",
		}),
		DatabaseOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "database_operations_total",
			Help:      "Database operations by type and status",
		}, []string{"operation", "status"}),
		DatabaseLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "database_operation_duration_seconds",
			Help:      "Database operation latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
