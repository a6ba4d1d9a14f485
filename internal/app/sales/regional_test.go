package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutu-network/salesdesk/internal/domain"
)

func TestService_AssignAndReleaseMonth(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, true)
	assert.Len(t, s.AvailableMonths(), len(DemoSales))

	require.NoError(t, s.AssignMonth(1, 2))
	assert.Equal(t, 1700.75, s.RegionalMatrix()[1][2])
	assert.Equal(t, []domain.MonthSlot{{Month: 2, Value: 1700.75}}, s.AssignedMonths(1))

	avail := s.AvailableMonths()
	assert.Len(t, avail, len(DemoSales)-1)
	for _, slot := range avail {
		assert.NotEqual(t, 2, slot.Month)
	}

	err := s.AssignMonth(0, 2)
	assert.ErrorIs(t, err, domain.ErrMonthAlreadyAssigned)

	require.NoError(t, s.ReleaseMonth(1, 2))
	assert.Empty(t, s.AssignedMonths(1))
	assert.Len(t, s.AvailableMonths(), len(DemoSales))
}

func TestService_AssignMonthErrors(t *testing.T) {
	s := newService(t, domain.KindArray, true)
	assert.ErrorIs(t, s.AssignMonth(3, 0), domain.ErrInvalidRegion)
	assert.ErrorIs(t, s.AssignMonth(-1, 0), domain.ErrInvalidRegion)
	assert.ErrorIs(t, s.AssignMonth(0, 6), domain.ErrInvalidMonth, "month without a sale")
	assert.ErrorIs(t, s.ReleaseMonth(0, 12), domain.ErrInvalidMonth)
	assert.ErrorIs(t, s.ReleaseMonth(5, 0), domain.ErrInvalidRegion)
	assert.Empty(t, s.AssignedMonths(7))
}

func TestService_UpdateSalePropagatesToRegions(t *testing.T) {
	s := newService(t, domain.KindSinglyLinked, true)
	require.NoError(t, s.AssignMonth(0, 0))
	require.NoError(t, s.UpdateSale(0, 2500))
	require.NoError(t, s.UpdateSale(1, 42))

	m := s.RegionalMatrix()
	assert.Equal(t, 2500.0, m[0][0])
	assert.Zero(t, m[0][1], "unassigned months stay empty")
}

func TestService_AssignRegionalRaw(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, false)
	assert.True(t, s.AssignRegional(2, 11, 5))
	assert.False(t, s.AssignRegional(3, 0, 5))
	assert.False(t, s.AssignRegional(0, 12, 5))

	snap := s.RegionalMatrix()
	snap[2][11] = 0
	assert.Equal(t, 5.0, s.RegionalMatrix()[2][11])
}

func TestService_BuildSalesTree(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, false)
	_, err := s.BuildSalesTree()
	assert.ErrorIs(t, err, domain.ErrNoSalesData)

	loadPairs(t, s, 50, 30, 70, 30)
	tree, err := s.BuildSalesTree()
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())

	res, ok := tree.Search(30)
	require.True(t, ok)
	assert.Equal(t, 2, res.Node.Frequency)

	// Snapshot: later mutations do not reach the tree.
	require.NoError(t, s.AddLast(90, 1))
	assert.False(t, tree.Contains(90))
}
