package metrics

// Package metrics collects and exposes Prometheus metrics for the gateway.

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the service layer uses to report auth outcomes.
type Recorder interface {
	RecordKeywordAttempt(outcome string)
	RecordOAuthLogin(outcome string)
	RecordExchangeLatency(d time.Duration)
	RecordSessionCreated()
}

// Outcome label values reported by the service layer.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidKeyword  = "invalid_keyword"
	OutcomeUnauthorized    = "unauthorized"
	OutcomeMissingCode     = "missing_code"
	OutcomeExchangeFailed  = "exchange_failed"
	OutcomeProfileFailed   = "profile_failed"
	OutcomeStorageFailed   = "storage_failed"
)

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	keywordAttempts *prometheus.CounterVec
	oauthLogins     *prometheus.CounterVec
	exchangeLatency prometheus.Histogram
	sessionsCreated prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		keywordAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authgw_keyword_attempts_total",
			Help: "Keyword gate submissions by outcome.",
		}, []string{"outcome"}),
		oauthLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authgw_oauth_logins_total",
			Help: "OAuth callback completions by outcome.",
		}, []string{"outcome"}),
		exchangeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "authgw_oauth_exchange_seconds",
			Help:    "Latency of the token exchange plus profile fetch.",
			Buckets: prometheus.DefBuckets,
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authgw_sessions_created_total",
			Help: "Sessions created on first contact.",
		}),
	}

	reg.MustRegister(
		c.keywordAttempts,
		c.oauthLogins,
		c.exchangeLatency,
		c.sessionsCreated,
	)

	return c
}

func (c *Collector) RecordKeywordAttempt(outcome string) {
	c.keywordAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordOAuthLogin(outcome string) {
	c.oauthLogins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordExchangeLatency(d time.Duration) {
	c.exchangeLatency.Observe(d.Seconds())
}

func (c *Collector) RecordSessionCreated() {
	c.sessionsCreated.Inc()
}

// Handler returns the HTTP handler serving the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything. Used when metrics are disabled
// and as a default in tests.
type Nop struct{}

func (Nop) RecordKeywordAttempt(string)         {}
func (Nop) RecordOAuthLogin(string)             {}
func (Nop) RecordExchangeLatency(time.Duration) {}
func (Nop) RecordSessionCreated()               {}
