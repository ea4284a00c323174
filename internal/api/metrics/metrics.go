// Package metrics defines all custom Prometheus metrics for the submission
// portal. It is the single source of truth for metric names, labels, and
// help strings; metrics self-register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_input", "invalid_credential", "forbidden",
//     "rate_limited", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SubmissionsCreatedTotal counts first-time submissions written to the store.
var SubmissionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of submissions accepted for the first time.",
	},
)

// SubmissionsReplayedTotal counts idempotent replays: submit calls for teams
// that had already submitted, answered with the original row.
var SubmissionsReplayedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_replayed_total",
		Help:      "Total number of submit calls answered with the existing submission.",
	},
)

// ExternalRequestDuration measures round-trip time of calls to external
// backends.
// Label:
//   - backend: "identity"
var ExternalRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "external_request_duration_seconds",
		Help:      "Duration of requests to external backends.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"backend"},
)
