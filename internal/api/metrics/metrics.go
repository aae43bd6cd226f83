// Package metrics defines the custom Prometheus metrics of the marketplace
// API. HTTP request metrics come from echoprometheus; everything here counts
// authentication and authorization outcomes.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

const namespace = "marketplace"

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "invalid", "duplicate", "unauthorized" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// TokenVerificationsTotal counts bearer token checks.
// Label:
//   - result: "valid", "missing", "malformed", "invalid_signature", "expired", "revoked" or "error"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of signed token verifications, by result.",
	},
	[]string{"result"},
)

// AuthorizationDecisionsTotal counts ownership and role checks.
// Label:
//   - result: "allowed" or "denied"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of authorization decisions on protected operations.",
	},
	[]string{"result"},
)

// ResourceMutationsTotal counts successful writes.
// Labels:
//   - resource: "user", "store", "product", "service", "job" or "announcement"
//   - action: "create", "update" or "deactivate"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of successful create, update and deactivate operations.",
	},
	[]string{"resource", "action"},
)

// AuthResult buckets a register or login error into a metric label.
func AuthResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrDuplicateUser):
		return "duplicate"
	case domain.IsAuthentication(err):
		return "unauthorized"
	default:
		return "error"
	}
}

// TokenResult buckets a token verification error into a metric label.
func TokenResult(err error) string {
	switch {
	case err == nil:
		return "valid"
	case errors.Is(err, domain.ErrAuthMissing):
		return "missing"
	case errors.Is(err, domain.ErrAuthMalformed), errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, domain.ErrTokenInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	default:
		return "error"
	}
}

// ObserveAuthorization records the outcome of a protected operation. Errors
// other than domain.ErrForbidden say nothing about the decision and are
// ignored.
func ObserveAuthorization(err error) {
	switch {
	case err == nil:
		AuthorizationDecisionsTotal.WithLabelValues("allowed").Inc()
	case errors.Is(err, domain.ErrForbidden):
		AuthorizationDecisionsTotal.WithLabelValues("denied").Inc()
	}
}
