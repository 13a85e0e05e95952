// Package metrics defines and registers all custom Prometheus metrics for
// the OWOD platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics register themselves with the default Prometheus registry at
// package init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "owod"

// ── Authentication metrics ────────────────────────────────────────────────────

// TokenValidationsTotal counts session-token validations on incoming requests.
// Label:
//   - result: "ok", "malformed", "bad_signature", or "expired"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of session token validations, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDecisionsTotal counts route-guard decisions.
// Labels:
//   - rule: the rule kind ("authenticated", "role", "owner_or_role")
//   - decision: "admit" or "deny"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by rule kind and outcome.",
	},
	[]string{"rule", "decision"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// WeeklyRotationsTotal counts featured-designer rotations.
// Label:
//   - result: "ok" or "error"
var WeeklyRotationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weekly_rotations_total",
		Help:      "Total number of weekly designer rotations, by result.",
	},
	[]string{"result"},
)

// ImageUploadsTotal counts stored images.
// Label:
//   - kind: "profile", "work", "logo", or "team"
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of images stored, by kind.",
	},
	[]string{"kind"},
)
