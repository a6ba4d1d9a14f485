// Package bench times repository scenarios against every backing kind so the
// cost model (array shifts vs linked walks) is visible from the command line.
// Runs are synchronous; each scenario gets fresh repositories.
package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/metrics"
	"github.com/tutu-network/salesdesk/internal/infra/repository"
)

// ArrayCapacity is the capacity of array repositories built for a run.
const ArrayCapacity = 100_000

var (
	ErrUnknownScenario   = fmt.Errorf("%w: unknown benchmark scenario", domain.ErrValidation)
	ErrTooManyIterations = fmt.Errorf("%w: iterations exceed array capacity", domain.ErrValidation)
)

// Scenario names one timed workload.
type Scenario string

const (
	AddFirst     Scenario = "add-first"
	AddLast      Scenario = "add-last"
	RandomAccess Scenario = "random-access"
	DeleteFirst  Scenario = "delete-first"
)

// Scenarios lists every scenario in display order.
func Scenarios() []Scenario {
	return []Scenario{AddFirst, AddLast, RandomAccess, DeleteFirst}
}

// ParseScenario resolves a scenario name.
func ParseScenario(s string) (Scenario, error) {
	want := Scenario(strings.ToLower(strings.TrimSpace(s)))
	for _, sc := range Scenarios() {
		if sc == want {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScenario, s)
}

// DefaultIterations is the operation count used when none is given.
func (s Scenario) DefaultIterations() int {
	switch s {
	case AddFirst:
		return 20_000
	case DeleteFirst:
		return 10_000
	}
	return 50_000
}

// Description summarizes the workload and the expected costs.
func (s Scenario) Description() string {
	switch s {
	case AddFirst:
		return "insert at the front (array O(n), linked O(1))"
	case AddLast:
		return "insert at the back (array O(1), singly O(n), doubly O(1))"
	case RandomAccess:
		return "read a random index (array O(1), linked O(n))"
	case DeleteFirst:
		return "delete from the front (array O(n), linked O(1))"
	}
	return string(s)
}

// Result is the timing of one scenario on one repository kind.
type Result struct {
	Scenario   Scenario              `json:"scenario"`
	Kind       domain.RepositoryKind `json:"kind"`
	Iterations int                   `json:"iterations"`
	Elapsed    time.Duration         `json:"elapsed"`
}

// PerOp is the mean time of a single operation.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

func (r Result) String() string {
	return fmt.Sprintf("%s on %s: %s ops in %s (%s/op)",
		r.Scenario, r.Kind.DisplayName(), humanize.Comma(int64(r.Iterations)),
		r.Elapsed.Round(time.Microsecond), r.PerOp())
}

// Run times scenario against a fresh repository of each kind. n <= 0 uses
// the scenario default. ctx is checked between kinds only.
func Run(ctx context.Context, scenario Scenario, kinds []domain.RepositoryKind, n int) ([]Result, error) {
	if _, err := ParseScenario(string(scenario)); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = scenario.DefaultIterations()
	}
	if n > ArrayCapacity {
		return nil, fmt.Errorf("%w: %s > %s", ErrTooManyIterations, humanize.Comma(int64(n)), humanize.Comma(ArrayCapacity))
	}

	results := make([]Result, 0, len(kinds))
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		repo, err := repository.New(kind, ArrayCapacity)
		if err != nil {
			return results, err
		}
		elapsed := runOne(repo, scenario, n)
		metrics.BenchDuration.WithLabelValues(string(scenario), string(kind)).Observe(elapsed.Seconds())
		results = append(results, Result{Scenario: scenario, Kind: kind, Iterations: n, Elapsed: elapsed})
	}
	return results, nil
}

// runOne seeds repo as the scenario requires, then times only the workload.
func runOne(repo domain.SequenceRepository, scenario Scenario, n int) time.Duration {
	switch scenario {
	case DeleteFirst:
		for i := 0; i < n; i++ {
			repo.InsertFront(float64(i))
		}
	case RandomAccess:
		for i := 0; i < n; i++ {
			repo.InsertBack(float64(i))
		}
	}

	rng := rand.New(rand.NewPCG(1, uint64(n)))
	start := time.Now()
	switch scenario {
	case AddFirst:
		for i := 0; i < n; i++ {
			repo.InsertFront(float64(i))
		}
	case AddLast:
		for i := 0; i < n; i++ {
			repo.InsertBack(float64(i))
		}
	case RandomAccess:
		size := repo.Len()
		for i := 0; i < n; i++ {
			_, _ = repo.Get(rng.IntN(size))
		}
	case DeleteFirst:
		for i := 0; i < n; i++ {
			repo.DeleteFront()
		}
	}
	return time.Since(start)
}
