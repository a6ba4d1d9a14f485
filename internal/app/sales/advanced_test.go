package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutu-network/salesdesk/internal/domain"
)

func TestService_RemoveDuplicates(t *testing.T) {
	for _, kind := range []domain.RepositoryKind{domain.KindSinglyLinked, domain.KindDoublyLinked} {
		t.Run(string(kind), func(t *testing.T) {
			s := newService(t, kind, false)
			for i, v := range []float64{5, 3, 5, 7, 3} {
				require.NoError(t, s.AddLast(v, float64(i)))
			}

			n, err := s.RemoveDuplicates(domain.EntitySales)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
			assert.Equal(t, []float64{5, 3, 7}, s.Sales())
			assert.Equal(t, []float64{0, 1, 3}, s.Targets(), "whole records are removed")

			n, err = s.RemoveDuplicates(domain.EntitySales)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestService_RemoveDuplicatesByTargets(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, false)
	require.NoError(t, s.AddLast(1, 50))
	require.NoError(t, s.AddLast(2, 60))
	require.NoError(t, s.AddLast(3, 50))

	n, err := s.RemoveDuplicates(domain.EntityTargets)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []float64{1, 2}, s.Sales())
}

func TestService_AdvancedOpsOnArray(t *testing.T) {
	s := newService(t, domain.KindArray, true)
	assert.False(t, s.SupportsAdvancedOps(domain.EntitySales))

	assert.ErrorIs(t, s.Reverse(domain.EntitySales), domain.ErrUnsupportedOperation)
	_, err := s.RemoveDuplicates(domain.EntitySales)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
	assert.Equal(t, DemoSales, s.Sales())

	// Threshold search falls back to a linear scan.
	i, err := s.FindFirstAtLeast(domain.EntitySales, 1600)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestService_FindFirstAtLeast(t *testing.T) {
	for _, kind := range domain.RepositoryKinds() {
		s := newService(t, kind, true)
		i, err := s.FindFirstAtLeast(domain.EntityTargets, 1500)
		require.NoError(t, err)
		assert.Equal(t, 2, i, kind)

		i, err = s.FindFirstAtLeast(domain.EntitySales, 5000)
		require.NoError(t, err)
		assert.Equal(t, -1, i, kind)
	}
}

func TestService_ReverseOneEntity(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, false)
	loadPairs(t, s, 1, 2, 3)
	require.True(t, s.SupportsAdvancedOps(domain.EntityTargets))

	require.NoError(t, s.Reverse(domain.EntitySales))
	assert.Equal(t, []float64{3, 2, 1}, s.Sales())
	assert.Equal(t, []float64{1, 2, 3}, s.Targets())
}

func TestService_RemoveByValue(t *testing.T) {
	forEachKind(t, func(t *testing.T, s *Service) {
		require.NoError(t, s.AddLast(10, 1))
		require.NoError(t, s.AddLast(20, 2))

		ok, err := s.RemoveByValue(domain.EntitySales, 20)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []float64{10}, s.Sales())
		assert.Equal(t, []float64{1}, s.Targets())

		ok, err = s.RemoveByValue(domain.EntityTargets, 99)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_UnknownEntity(t *testing.T) {
	s := newService(t, domain.KindDoublyLinked, true)
	assert.False(t, s.SupportsAdvancedOps("profit"))
	assert.ErrorIs(t, s.Reverse("profit"), domain.ErrUnknownEntity)
	_, err := s.FindFirstAtLeast("profit", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
}
