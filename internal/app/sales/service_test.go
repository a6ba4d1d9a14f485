package sales

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutu-network/salesdesk/internal/domain"
)

func newService(t *testing.T, kind domain.RepositoryKind, preload bool) *Service {
	t.Helper()
	opts := DefaultOptions()
	opts.Kind = kind
	opts.Preload = preload
	s, err := New(opts, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func loadPairs(t *testing.T, s *Service, sales ...float64) {
	t.Helper()
	for _, v := range sales {
		require.NoError(t, s.AddLast(v, v))
	}
}

func forEachKind(t *testing.T, fn func(t *testing.T, s *Service)) {
	for _, kind := range domain.RepositoryKinds() {
		t.Run(string(kind), func(t *testing.T) {
			fn(t, newService(t, kind, false))
		})
	}
}

// ─── Construction & Reset ───────────────────────────────────────────────────

func TestNew_DefaultsPreloadDemo(t *testing.T) {
	s, err := New(DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, domain.KindDoublyLinked, s.Kind())
	assert.Equal(t, DemoSales, s.Sales())
	assert.Equal(t, DemoTargets, s.Targets())
	r, m := s.RegionalShape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 12, m)
}

func TestNew_InvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Capacity = 0
	_, err := New(opts, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	opts = DefaultOptions()
	opts.Kind = "heap"
	_, err = New(opts, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrUnknownRepoKind)
}

func TestService_ResetReplacesState(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, true)
	require.NoError(t, s.AddLast(1, 1))
	require.NoError(t, s.AssignMonth(0, 0))
	first, err := s.EnqueueOrder("before reset")
	require.NoError(t, err)

	require.NoError(t, s.Reset(domain.KindArray))

	assert.Equal(t, domain.KindArray, s.Kind())
	assert.Equal(t, DemoSales, s.Sales(), "records are replaced, not migrated")
	assert.Empty(t, s.AssignedMonths(0))
	assert.Empty(t, s.ActiveOrders())
	assert.Empty(t, s.OrderHistory())

	next, err := s.EnqueueOrder("after reset")
	require.NoError(t, err)
	assert.Greater(t, next.ID, first.ID, "order ids keep increasing across resets")
}

func TestService_ResetUnknownKindKeepsState(t *testing.T) {
	s := newService(t, domain.KindSinglyLinked, true)
	err := s.Reset("tree")
	assert.ErrorIs(t, err, domain.ErrUnknownRepoKind)
	assert.Equal(t, domain.KindSinglyLinked, s.Kind())
	assert.Equal(t, DemoSales, s.Sales())
}

func TestService_PreloadStopsAtCapacity(t *testing.T) {
	opts := DefaultOptions()
	opts.Capacity = 4
	s, err := New(opts, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DemoSales[:4], s.Sales())
}

func TestNew_DemoOutsideRangeFails(t *testing.T) {
	opts := DefaultOptions()
	opts.Range = domain.ValueRange{Min: 0, Max: 1000}
	_, err := New(opts, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrValueOutOfRange)

	opts.Preload = false
	s, err := New(opts, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

// ─── Paired Records ─────────────────────────────────────────────────────────

func TestService_PairedInsertsKeepLengthsEqual(t *testing.T) {
	forEachKind(t, func(t *testing.T, s *Service) {
		require.NoError(t, s.AddLast(200, 20))
		require.NoError(t, s.AddFirst(100, 10))
		require.NoError(t, s.InsertAfter(1, 300, 30))

		assert.Equal(t, []float64{100, 200, 300}, s.Sales())
		assert.Equal(t, []float64{10, 20, 30}, s.Targets())
		assert.Equal(t, 3, s.Len())

		require.NoError(t, s.DeleteFirst())
		require.NoError(t, s.DeleteLast())
		assert.Equal(t, []float64{200}, s.Sales())
		assert.Equal(t, []float64{20}, s.Targets())
	})
}

func TestService_ValueRange(t *testing.T) {
	s := newService(t, domain.KindArray, false)
	for _, pair := range [][2]float64{{-1, 0}, {0, 10000}, {9999.995, 1}} {
		err := s.AddLast(pair[0], pair[1])
		assert.ErrorIs(t, err, domain.ErrValueOutOfRange, "pair %v", pair)
	}
	require.NoError(t, s.AddLast(0, 9999.99))
	assert.Equal(t, 1, s.Len())
}

func TestService_MonthLimit(t *testing.T) {
	forEachKind(t, func(t *testing.T, s *Service) {
		for i := 0; i < 12; i++ {
			require.NoError(t, s.AddLast(float64(i), 1))
		}
		err := s.AddLast(1, 1)
		assert.ErrorIs(t, err, domain.ErrMonthLimitReached)
		assert.ErrorIs(t, err, domain.ErrCapacity)
		assert.ErrorIs(t, s.AddFirst(1, 1), domain.ErrMonthLimitReached)
		assert.ErrorIs(t, s.InsertAfter(0, 1, 1), domain.ErrMonthLimitReached)
		assert.Equal(t, 12, s.Len())
		assert.Equal(t, 12, len(s.Targets()))
	})
}

func TestService_IndexErrors(t *testing.T) {
	forEachKind(t, func(t *testing.T, s *Service) {
		assert.ErrorIs(t, s.DeleteFirst(), domain.ErrNoSalesData)
		assert.ErrorIs(t, s.DeleteLast(), domain.ErrNoSalesData)

		loadPairs(t, s, 1, 2)
		assert.ErrorIs(t, s.InsertAfter(2, 1, 1), domain.ErrIndexOutOfRange)
		assert.ErrorIs(t, s.DeleteRecord(-1), domain.ErrIndexOutOfRange)
		assert.ErrorIs(t, s.UpdateRecord(5, 1, 1), domain.ErrIndexOutOfRange)
		assert.ErrorIs(t, s.UpdateSale(2, 1), domain.ErrIndexOutOfRange)
		assert.ErrorIs(t, s.UpdateTarget(2, 1), domain.ErrIndexOutOfRange)
		assert.Equal(t, []float64{1, 2}, s.Sales())
	})
}

func TestService_Updates(t *testing.T) {
	s := newService(t, domain.KindSinglyLinked, false)
	loadPairs(t, s, 1, 2, 3)

	require.NoError(t, s.UpdateRecord(0, 10, 100))
	require.NoError(t, s.UpdateSale(1, 20))
	require.NoError(t, s.UpdateTarget(2, 300))
	assert.ErrorIs(t, s.UpdateSale(1, -5), domain.ErrValueOutOfRange)

	assert.Equal(t, []float64{10, 20, 3}, s.Sales())
	assert.Equal(t, []float64{100, 2, 300}, s.Targets())
}

func TestService_DeleteRecord(t *testing.T) {
	forEachKind(t, func(t *testing.T, s *Service) {
		loadPairs(t, s, 1, 2, 3)
		require.NoError(t, s.DeleteRecord(1))
		assert.Equal(t, []float64{1, 3}, s.Sales())
		assert.Equal(t, []float64{1, 3}, s.Targets())
	})
}
