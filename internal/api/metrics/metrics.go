// Package metrics defines and registers all custom Prometheus metrics for the
// wedding RSVP API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wedding"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── RSVP metrics ──────────────────────────────────────────────────────────────

// RSVPWritesTotal counts stored responses.
// Label:
//   - acceptance: "accepted", "declined" or "unanswered"
var RSVPWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rsvp_writes_total",
		Help:      "Total number of RSVP responses written, by acceptance state.",
	},
	[]string{"acceptance"},
)

// RSVPBatchesTotal counts batch submissions.
// Label:
//   - outcome: "ok", "partial" or "invalid"
var RSVPBatchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rsvp_batches_total",
		Help:      "Total number of RSVP batch submissions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Comment and account metrics ───────────────────────────────────────────────

// CommentsTotal counts comments left by guests.
var CommentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of guest comments added.",
	},
)

// AccountsTotal counts account administration actions.
// Label:
//   - action: "created", "updated" or "deleted"
var AccountsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_total",
		Help:      "Total number of account administration actions, by action.",
	},
	[]string{"action"},
)

// ── Activity dispatcher metrics ───────────────────────────────────────────────

// ActivityQueueDepth tracks the number of activity entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ObserveQueueDepth matches queue.DepthObserver.
func ObserveQueueDepth(workerID, depth int) {
	ActivityQueueDepth.WithLabelValues(strconv.Itoa(workerID)).Set(float64(depth))
}
