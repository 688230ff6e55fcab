package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kehilla_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kehilla_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ToggleOperations counts membership toggles by relation and resulting state.
	ToggleOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kehilla_toggle_operations_total",
		Help: "Total membership toggles by relation (like, follow, registration) and resulting state (on, off)",
	}, []string{"relation", "state"})

	// SessionCapacityRejections counts registrations refused because a session was full.
	SessionCapacityRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kehilla_session_capacity_rejections_total",
		Help: "Total study session registrations rejected for capacity",
	})

	// FeedCacheRequests counts feed reads served from cache versus the database.
	FeedCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kehilla_feed_cache_requests_total",
		Help: "Feed requests by cache outcome (hit, miss, bypass)",
	}, []string{"outcome"})

	// AuthFailures counts failed logins and rejected tokens.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kehilla_auth_failures_total",
		Help: "Authentication failures by kind (login, token)",
	}, []string{"kind"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// RecordToggle increments the toggle counter for a relation.
func RecordToggle(relation string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	ToggleOperations.WithLabelValues(relation, state).Inc()
}
