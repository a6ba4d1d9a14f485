package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutu-network/salesdesk/internal/domain"
)

func TestParseScenario(t *testing.T) {
	for _, sc := range Scenarios() {
		got, err := ParseScenario(" " + strings.ToUpper(string(sc)) + " ")
		require.NoError(t, err)
		assert.Equal(t, sc, got)
	}
	_, err := ParseScenario("sort")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScenario_DefaultIterations(t *testing.T) {
	assert.Equal(t, 20_000, AddFirst.DefaultIterations())
	assert.Equal(t, 50_000, AddLast.DefaultIterations())
	assert.Equal(t, 50_000, RandomAccess.DefaultIterations())
	assert.Equal(t, 10_000, DeleteFirst.DefaultIterations())
}

func TestRun_AllScenariosAllKinds(t *testing.T) {
	for _, sc := range Scenarios() {
		t.Run(string(sc), func(t *testing.T) {
			results, err := Run(context.Background(), sc, domain.RepositoryKinds(), 200)
			require.NoError(t, err)
			require.Len(t, results, 3)
			for i, r := range results {
				assert.Equal(t, domain.RepositoryKinds()[i], r.Kind)
				assert.Equal(t, sc, r.Scenario)
				assert.Equal(t, 200, r.Iterations)
				assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
			}
		})
	}
}

func TestRun_Validation(t *testing.T) {
	_, err := Run(context.Background(), "shuffle", domain.RepositoryKinds(), 10)
	assert.ErrorIs(t, err, ErrUnknownScenario)

	_, err = Run(context.Background(), AddLast, domain.RepositoryKinds(), ArrayCapacity+1)
	assert.ErrorIs(t, err, ErrTooManyIterations)

	_, err = Run(context.Background(), AddLast, []domain.RepositoryKind{"heap"}, 10)
	assert.ErrorIs(t, err, domain.ErrUnknownRepoKind)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, AddFirst, domain.RepositoryKinds(), 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestResult_Format(t *testing.T) {
	r := Result{Scenario: AddLast, Kind: domain.KindArray, Iterations: 50_000, Elapsed: 5 * time.Millisecond}
	assert.Equal(t, 100*time.Nanosecond, r.PerOp())
	assert.Contains(t, r.String(), "50,000 ops")
	assert.Contains(t, r.String(), "Array")
	assert.Zero(t, Result{}.PerOp())
}
