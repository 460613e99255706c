package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth failure reasons used as label values.
const (
	ReasonMissingToken  = "missing_token"
	ReasonInvalidToken  = "invalid_token"
	ReasonOrphanToken   = "orphan_token"
	ReasonBadCredential = "bad_credentials"
	ReasonWrongRole     = "wrong_role"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registrations      prometheus.Counter
	Logins             prometheus.Counter
	AuthFailures       *prometheus.CounterVec
	AuditWriteFailures *prometheus.CounterVec
	PolicyViolations   *prometheus.CounterVec
	RateLimited        prometheus.Counter
	EndpointLatency    *prometheus.HistogramVec

	reg prometheus.Registerer
}

// New creates and registers all metrics on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounter(prometheus.CounterOpts{
			Name: "oirla_registrations_total",
			Help: "Total number of committed artist registrations",
		}),
		Logins: f.NewCounter(prometheus.CounterOpts{
			Name: "oirla_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oirla_auth_failures_total",
			Help: "Total number of authentication and authorization failures, labeled by reason",
		}, []string{"reason"}),
		AuditWriteFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oirla_audit_write_failures_total",
			Help: "Total number of audit records that could not be persisted, labeled by action",
		}, []string{"action"}),
		PolicyViolations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oirla_policy_violations_total",
			Help: "Total number of denylist rejections, labeled by call site",
		}, []string{"site"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "oirla_rate_limited_total",
			Help: "Total number of requests rejected by the per-address rate limit",
		}),
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oirla_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		reg: reg,
	}
}

// RegisterDBStats exposes connection pool statistics for db.
func (m *Metrics) RegisterDBStats(db *sql.DB) error {
	if m == nil || db == nil {
		return nil
	}
	return m.reg.Register(collectors.NewDBStatsCollector(db, "oirla"))
}

// IncrementRegistrations increments the registrations counter by 1.
func (m *Metrics) IncrementRegistrations() {
	if m == nil {
		return
	}
	m.Registrations.Inc()
}

// IncrementLogins increments the successful logins counter by 1.
func (m *Metrics) IncrementLogins() {
	if m == nil {
		return
	}
	m.Logins.Inc()
}

func (m *Metrics) IncrementAuthFailures(reason string) {
	if m == nil {
		return
	}
	m.AuthFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementAuditWriteFailures(action string) {
	if m == nil {
		return
	}
	m.AuditWriteFailures.WithLabelValues(action).Inc()
}

func (m *Metrics) IncrementPolicyViolations(site string) {
	if m == nil {
		return
	}
	m.PolicyViolations.WithLabelValues(site).Inc()
}

func (m *Metrics) IncrementRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}
