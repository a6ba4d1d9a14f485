package regional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Shape(t *testing.T) {
	m := New(3, 12)
	assert.Equal(t, 3, m.Regions())
	assert.Equal(t, 12, m.Months())

	snap := m.Snapshot()
	require.Len(t, snap, 3)
	for _, row := range snap {
		assert.Len(t, row, 12)
		for _, v := range row {
			assert.Zero(t, v)
		}
	}
}

func TestMatrix_SetGet(t *testing.T) {
	m := New(3, 12)
	require.True(t, m.Set(1, 4, 1500))

	v, ok := m.Get(1, 4)
	require.True(t, ok)
	assert.Equal(t, 1500.0, v)
	assert.True(t, m.Assigned(4))
	assert.False(t, m.Assigned(5))
}

func TestMatrix_OutOfRange(t *testing.T) {
	m := New(3, 12)
	cases := []struct{ r, c int }{
		{-1, 0}, {3, 0}, {0, -1}, {0, 12}, {5, 20},
	}
	for _, tc := range cases {
		assert.False(t, m.Set(tc.r, tc.c, 1), "Set(%d,%d)", tc.r, tc.c)
		_, ok := m.Get(tc.r, tc.c)
		assert.False(t, ok, "Get(%d,%d)", tc.r, tc.c)
	}
	assert.Equal(t, New(3, 12).Snapshot(), m.Snapshot(), "failed sets must not change the grid")
	assert.False(t, m.Assigned(12))
}

func TestMatrix_SnapshotIsDeepCopy(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 0, 7)
	snap := m.Snapshot()
	snap[0][0] = 99
	snap[1] = nil

	v, _ := m.Get(0, 0)
	assert.Equal(t, 7.0, v)
	assert.Len(t, m.Snapshot()[1], 2)
}

func TestNew_NonPositiveDimensions(t *testing.T) {
	m := New(0, -4)
	assert.Equal(t, 0, m.Regions())
	assert.Equal(t, 0, m.Months())
	assert.False(t, m.Set(0, 0, 1))
	assert.Empty(t, m.Snapshot())
}
