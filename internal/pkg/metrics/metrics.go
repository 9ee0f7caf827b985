// Package metrics defines and registers the custom Prometheus metrics of the
// movie catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// ── Library metrics ───────────────────────────────────────────────────────────

// FavoritesChangedTotal counts favorite additions and removals that changed state.
// Label:
//   - action: "add" or "remove"
var FavoritesChangedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_changed_total",
		Help:      "Total number of favorites added or removed.",
	},
	[]string{"action"},
)

// WatchHistoryRecordedTotal counts watch history writes.
var WatchHistoryRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watch_history_recorded_total",
		Help:      "Total number of watch history entries created or refreshed.",
	},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsCreatedTotal counts stored reviews.
// Label:
//   - rating: the star rating, "1" to "5"
var ReviewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created, by rating.",
	},
	[]string{"rating"},
)

// RatingRecomputeDuration measures the full recompute of a movie's rating aggregate.
// Label:
//   - result: "ok" or "error"
var RatingRecomputeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_recompute_duration_seconds",
		Help:      "Duration of re-reading a movie's reviews and storing its rating aggregate.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// GuardRejectionsTotal counts create requests turned away because the same
// (user, movie) pair was already being processed.
// Label:
//   - scope: "review" or "favorite"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of concurrent duplicate submissions rejected by the submission guard.",
	},
	[]string{"scope"},
)
