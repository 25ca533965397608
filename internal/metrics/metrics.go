package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sharing"

// Metrics holds the Prometheus collectors for the service.
// All methods are nil-safe: calls on a nil *Metrics are no-ops.
type Metrics struct {
	// RequestsTotal counts HTTP requests by method, route template and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes HTTP latency by method and route template.
	RequestDuration *prometheus.HistogramVec

	// SharesCreated counts successfully created shares.
	SharesCreated prometheus.Counter

	// StatusUpdates counts applied status changes, labeled by target status.
	StatusUpdates *prometheus.CounterVec

	// SharesDeleted counts hard deletes.
	SharesDeleted prometheus.Counter

	// AuthLookups counts calls to the user service by outcome:
	// "authenticated", "anonymous", "rejected", "error".
	AuthLookups *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// If reg is nil the collectors are created but not registered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SharesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shares",
			Name:      "created_total",
			Help:      "Total number of shares created",
		}),
		StatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shares",
			Name:      "status_updates_total",
			Help:      "Total number of share status updates",
		}, []string{"status"}),
		SharesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shares",
			Name:      "deleted_total",
			Help:      "Total number of shares deleted",
		}),
		AuthLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "lookups_total",
			Help:      "Total number of identity lookups against the user service",
		}, []string{"outcome"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.RequestsTotal,
			m.RequestDuration,
			m.SharesCreated,
			m.StatusUpdates,
			m.SharesDeleted,
			m.AuthLookups,
		)
	}
	return m
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ShareCreated records a created share.
func (m *Metrics) ShareCreated() {
	if m == nil {
		return
	}
	m.SharesCreated.Inc()
}

// StatusUpdated records a status change to status.
func (m *Metrics) StatusUpdated(status string) {
	if m == nil {
		return
	}
	m.StatusUpdates.WithLabelValues(status).Inc()
}

// ShareDeleted records a hard delete.
func (m *Metrics) ShareDeleted() {
	if m == nil {
		return
	}
	m.SharesDeleted.Inc()
}

// AuthLookup records the outcome of an identity lookup.
func (m *Metrics) AuthLookup(outcome string) {
	if m == nil {
		return
	}
	m.AuthLookups.WithLabelValues(outcome).Inc()
}
