// Package metrics provides Prometheus instrumentation for session
// authentication: session lifecycle counters and login outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes recorded by LoginAttempts.
const (
	OutcomeSuccess       = "success"
	OutcomeMissingField  = "missing_field"
	OutcomeUnknownUser   = "unknown_user"
	OutcomeWrongPassword = "wrong_password"
	OutcomeError         = "error"
)

var (
	// SessionsCreated counts sessions issued by the session authenticator.
	SessionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_auth_sessions_created_total",
		Help: "Total number of sessions created",
	})

	// SessionsDestroyed counts sessions removed on logout or expiry.
	SessionsDestroyed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_auth_sessions_destroyed_total",
		Help: "Total number of sessions destroyed",
	}, []string{"reason"}) // reason = "logout", "expired"

	// SessionsActive tracks sessions created and not yet destroyed by this
	// process.
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "session_auth_sessions_active",
		Help: "Current number of live sessions issued by this process",
	})

	// LoginAttempts counts login requests by outcome.
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_auth_login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(
		SessionsCreated,
		SessionsDestroyed,
		SessionsActive,
		LoginAttempts,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
