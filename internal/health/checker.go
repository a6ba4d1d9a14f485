// Package health runs invariant checks over a live sales service. Checks run
// on demand; the service is not safe for concurrent use, so there is no
// background loop.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/metrics"
)

// Source is the read-only view of the service the checks inspect.
type Source interface {
	Sales() []float64
	Targets() []float64
	Capacity() int
	RegionalMatrix() [][]float64
	RegionalShape() (regions, months int)
	ActiveOrders() []domain.Order
	CurrentOrder() (domain.Order, bool)
}

// Check defines a single invariant with an optional recovery action.
type Check struct {
	Name      string
	CheckFn   func(ctx context.Context) error
	RecoverFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker runs the invariant checks and keeps the latest results.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
}

// NewChecker creates a checker with the standard service invariants.
func NewChecker(src Source) *Checker {
	return &Checker{
		checks: []Check{
			{Name: "paired_length", CheckFn: func(context.Context) error { return checkPairedLength(src) }},
			{Name: "month_limit", CheckFn: func(context.Context) error { return checkMonthLimit(src) }},
			{Name: "regional_shape", CheckFn: func(context.Context) error { return checkRegionalShape(src) }},
			{Name: "order_slot", CheckFn: func(context.Context) error { return checkOrderSlot(src) }},
		},
	}
}

// RunAll executes every check once and returns the results. A cancelled
// context stops before the next check; remaining checks report the context
// error.
func (c *Checker) RunAll(ctx context.Context) []Status {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: time.Now(),
		}
		err := ctx.Err()
		if err == nil {
			err = check.CheckFn(ctx)
		}
		if err != nil {
			s.Error = err.Error()
			if check.RecoverFn != nil {
				_ = check.RecoverFn(ctx)
			}
		} else {
			s.Healthy = true
		}
		statuses[i] = s
		metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(boolGauge(s.Healthy))
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
	return c.Statuses()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ─── Check Implementations ──────────────────────────────────────────────────

func checkPairedLength(src Source) error {
	if s, t := len(src.Sales()), len(src.Targets()); s != t {
		return fmt.Errorf("sales has %d months, targets has %d", s, t)
	}
	return nil
}

func checkMonthLimit(src Source) error {
	if n, limit := len(src.Sales()), src.Capacity(); n > limit {
		return fmt.Errorf("%d months recorded, limit is %d", n, limit)
	}
	return nil
}

func checkRegionalShape(src Source) error {
	regions, months := src.RegionalShape()
	m := src.RegionalMatrix()
	if len(m) != regions {
		return fmt.Errorf("matrix has %d regions, want %d", len(m), regions)
	}
	for r, row := range m {
		if len(row) != months {
			return fmt.Errorf("region %d has %d months, want %d", r+1, len(row), months)
		}
	}
	// A month belongs to at most one region.
	for month := 0; month < months; month++ {
		holders := 0
		for _, row := range m {
			if row[month] != 0 {
				holders++
			}
		}
		if holders > 1 {
			return fmt.Errorf("month %d assigned to %d regions", month+1, holders)
		}
	}
	return nil
}

func checkOrderSlot(src Source) error {
	active := src.ActiveOrders()
	inProcess := 0
	for i, o := range active {
		switch o.Status {
		case domain.OrderInProcess:
			inProcess++
			if i != 0 {
				return fmt.Errorf("in-process order %d listed at position %d", o.ID, i+1)
			}
		case domain.OrderPending:
		default:
			return fmt.Errorf("order %d is %s but still active", o.ID, o.Status)
		}
	}
	if inProcess > 1 {
		return fmt.Errorf("%d orders in process", inProcess)
	}
	_, busy := src.CurrentOrder()
	if busy != (inProcess == 1) {
		return fmt.Errorf("in-process slot disagrees with active list")
	}
	return nil
}
