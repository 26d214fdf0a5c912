// Package metrics defines the Prometheus collectors of the scheduling backend.
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Check outcomes recorded by ObserveCheck.
const (
	CheckOK                 = "ok"
	CheckValidation         = "validation"
	CheckVenueConflict      = "venue_conflict"
	CheckCapacityPerSession = "capacity_per_session"
	CheckCapacityAggregate  = "capacity_aggregate"
	CheckGuardBusy          = "guard_busy"
)

// Metrics holds the application collectors.
type Metrics struct {
	// HTTP requests by method, route pattern and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTP latency by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// Scheduling check outcomes. One candidate may record several failure results.
	ScheduleChecksTotal *prometheus.CounterVec

	// Session writes by op (create, update, cancel, delete) and status (ok, error).
	SessionMutationsTotal *prometheus.CounterVec

	// Commit guard wait time by status (acquired, busy, error).
	GuardWaitDuration *prometheus.HistogramVec
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ScheduleChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schedule_checks_total",
				Help: "Scheduling integrity check outcomes",
			},
			[]string{"result"},
		),
		SessionMutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_mutations_total",
				Help: "Session writes issued to the repository",
			},
			[]string{"op", "status"},
		),
		GuardWaitDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "schedule_guard_wait_seconds",
				Help:    "Time spent acquiring the per-event commit guard",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ScheduleChecksTotal,
		m.SessionMutationsTotal,
		m.GuardWaitDuration,
	)
	return m
}

// ObserveCheck counts one check outcome.
func (m *Metrics) ObserveCheck(result string) {
	if m == nil {
		return
	}
	m.ScheduleChecksTotal.WithLabelValues(result).Inc()
}

// ObserveMutation counts one repository write.
func (m *Metrics) ObserveMutation(op string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.SessionMutationsTotal.WithLabelValues(op, status).Inc()
}

// ObserveGuard records how long acquiring the commit guard took.
func (m *Metrics) ObserveGuard(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.GuardWaitDuration.WithLabelValues(status).Observe(d.Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
