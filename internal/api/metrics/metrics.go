// Package metrics defines the custom Prometheus metrics of the Bistro API.
// It is the single source of truth for metric names, labels and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is loaded; echoprometheus serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bistro"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Labels:
//   - stage: "authenticate" or "authorize"
//   - reason: short description (e.g. "missing_token", "expired", "not_admin")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"stage", "reason"},
)

// TokensIssuedTotal counts tokens handed out by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsRecordedTotal counts POST /payments outcomes.
// Label:
//   - result: "ok", "duplicate" or "error"
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payment recording attempts, by result.",
	},
	[]string{"result"},
)

// PaymentIntentsTotal counts payment intents created with the provider.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents requested from the provider.",
	},
	[]string{"result"},
)

// ── Background task metrics ───────────────────────────────────────────────────

// TasksTotal counts background task outcomes.
// Labels:
//   - task: task name (e.g. "order_confirmation", "cart_cleanup")
//   - result: "ok", "failed" or "dropped"
var TasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_total",
		Help:      "Total number of background tasks, by name and result.",
	},
	[]string{"task", "result"},
)

// TaskQueueDepth tracks the number of tasks waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var TaskQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "task_queue_depth",
		Help:      "Current number of tasks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// TaskDuration measures how long a background task takes to run.
var TaskDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "task_duration_seconds",
		Help:      "Duration of background task execution.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"task"},
)
