package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_KeywordAttempts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordKeywordAttempt(OutcomeSuccess)
	c.RecordKeywordAttempt(OutcomeSuccess)
	c.RecordKeywordAttempt(OutcomeInvalidKeyword)

	expected := `
		# HELP authgw_keyword_attempts_total Keyword gate submissions by outcome.
		# TYPE authgw_keyword_attempts_total counter
		authgw_keyword_attempts_total{outcome="invalid_keyword"} 1
		authgw_keyword_attempts_total{outcome="success"} 2
	`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"authgw_keyword_attempts_total"))
}

func TestCollector_OAuthLogins(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordOAuthLogin(OutcomeSuccess)
	c.RecordOAuthLogin(OutcomeExchangeFailed)

	expected := `
		# HELP authgw_oauth_logins_total OAuth callback completions by outcome.
		# TYPE authgw_oauth_logins_total counter
		authgw_oauth_logins_total{outcome="exchange_failed"} 1
		authgw_oauth_logins_total{outcome="success"} 1
	`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"authgw_oauth_logins_total"))
}

func TestCollector_SessionsCreated(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSessionCreated()
	c.RecordSessionCreated()

	assert.Equal(t, float64(2), testutil.ToFloat64(c.sessionsCreated))
}

func TestCollector_ExchangeLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordExchangeLatency(150 * time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "authgw_oauth_exchange_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNop_ImplementsRecorder(t *testing.T) {
	var rec Recorder = Nop{}

	rec.RecordKeywordAttempt(OutcomeSuccess)
	rec.RecordOAuthLogin(OutcomeSuccess)
	rec.RecordExchangeLatency(time.Second)
	rec.RecordSessionCreated()
}
