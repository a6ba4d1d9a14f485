// Package metrics provides Prometheus metrics for salesdesk: repository
// mutations, order lifecycle, calculator outcomes, health, and benchmarks.
// Metrics register with the default registry and are read in-process; nothing
// is served over the network.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salesdesk"

// ─── Repository ─────────────────────────────────────────────────────────────

// RepositoryOps counts record mutations by repository kind, operation and
// result ("ok" or the failure class).
var RepositoryOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "repository_operations_total",
	Help:      "Record mutations by repository kind, operation and result.",
}, []string{"kind", "op", "result"})

// RecordsHeld tracks the number of values held per entity.
var RecordsHeld = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "records_held",
	Help:      "Number of monthly values currently held per entity.",
}, []string{"entity"})

// DuplicatesRemoved counts records removed by duplicate elimination.
var DuplicatesRemoved = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "duplicates_removed_total",
	Help:      "Total records removed by duplicate elimination.",
})

// ServiceResets counts full state replacements by the new repository kind.
var ServiceResets = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "service_resets_total",
	Help:      "Total service resets by repository kind.",
}, []string{"kind"})

// ─── Orders ─────────────────────────────────────────────────────────────────

// OrderTransitions counts orders entering each lifecycle status.
var OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "order_transitions_total",
	Help:      "Total orders entering each lifecycle status.",
}, []string{"status"})

// OrdersPending tracks queued orders, excluding the one in process.
var OrdersPending = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "orders_pending",
	Help:      "Number of orders waiting in the queue.",
})

// ─── Calculator ─────────────────────────────────────────────────────────────

// CalculatorEvaluations counts calculator calls by stage and result.
var CalculatorEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "calculator_evaluations_total",
	Help:      "Calculator calls by stage (postfix, evaluate) and result.",
}, []string{"stage", "result"})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "health_check_status",
	Help:      "Health check result per invariant (1=healthy, 0=unhealthy).",
}, []string{"check"})

// ─── Bench ──────────────────────────────────────────────────────────────────

// BenchDuration tracks benchmark scenario wall time per repository kind.
var BenchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "bench_duration_seconds",
	Help:      "Benchmark scenario duration in seconds.",
	Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
}, []string{"scenario", "kind"})
