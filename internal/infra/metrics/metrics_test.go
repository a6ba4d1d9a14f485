package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func gatheredNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestRepositoryMetrics(t *testing.T) {
	RepositoryOps.WithLabelValues("doubly", "insert_back", "ok").Inc()
	RecordsHeld.WithLabelValues("sales").Set(6)
	DuplicatesRemoved.Add(2)
	ServiceResets.WithLabelValues("array").Inc()

	names := gatheredNames(t)
	for _, name := range []string{
		"salesdesk_repository_operations_total",
		"salesdesk_records_held",
		"salesdesk_duplicates_removed_total",
		"salesdesk_service_resets_total",
	} {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestOrderMetrics(t *testing.T) {
	before := testutil.ToFloat64(OrderTransitions.WithLabelValues("completed"))
	OrderTransitions.WithLabelValues("completed").Inc()
	if got := testutil.ToFloat64(OrderTransitions.WithLabelValues("completed")); got != before+1 {
		t.Errorf("order_transitions_total{completed} = %v, want %v", got, before+1)
	}

	OrdersPending.Set(3)
	if got := testutil.ToFloat64(OrdersPending); got != 3 {
		t.Errorf("orders_pending = %v, want 3", got)
	}
}

func TestCalculatorMetrics(t *testing.T) {
	CalculatorEvaluations.WithLabelValues("evaluate", "ok").Inc()
	CalculatorEvaluations.WithLabelValues("evaluate", "arithmetic").Inc()
	if n := testutil.CollectAndCount(CalculatorEvaluations); n < 2 {
		t.Errorf("calculator series = %d, want >= 2", n)
	}
}

func TestHealthAndBenchMetrics(t *testing.T) {
	HealthCheckStatus.WithLabelValues("paired_length").Set(1)
	BenchDuration.WithLabelValues("add-last", "array").Observe(0.002)

	names := gatheredNames(t)
	for _, name := range []string{
		"salesdesk_health_check_status",
		"salesdesk_bench_duration_seconds",
	} {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}
