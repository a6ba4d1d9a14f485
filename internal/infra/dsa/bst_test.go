package dsa

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

func TestBST_InOrderSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := NewBST()
	distinct := map[float64]bool{}
	for i := 0; i < 500; i++ {
		v := float64(rng.Intn(100))
		tree.Insert(v)
		distinct[v] = true
	}

	in := tree.InOrder()
	assert.True(t, sort.Float64sAreSorted(values(in)), "inorder must be non-decreasing")
	assert.Len(t, in, len(distinct))
	assert.Equal(t, len(distinct), tree.Len())

	total := 0
	for _, e := range in {
		total += e.Frequency
	}
	assert.Equal(t, 500, total)
}

func TestBST_SearchReportsParentLevelPosition(t *testing.T) {
	tree := BuildBST([]float64{50, 30, 70, 30})

	res, ok := tree.Search(30)
	require.True(t, ok)
	assert.Equal(t, Entry{Value: 30, Frequency: 2}, res.Node)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, PositionLeftChild, res.Position)
	require.True(t, res.HasParent)
	assert.Equal(t, 50.0, res.Parent.Value)

	root, ok := tree.Search(50)
	require.True(t, ok)
	assert.Equal(t, PositionRoot, root.Position)
	assert.False(t, root.HasParent)
	assert.Equal(t, 0, root.Level)

	right, _ := tree.Search(70)
	assert.Equal(t, PositionRightChild, right.Position)

	_, ok = tree.Search(99)
	assert.False(t, ok)
}

func TestBST_DeleteLeaf(t *testing.T) {
	tree := BuildBST([]float64{50, 30, 70})
	require.True(t, tree.Delete(30))
	assert.Equal(t, []float64{50, 70}, values(tree.InOrder()))
	assert.Equal(t, 2, tree.Len())
}

func TestBST_DeleteOneChild(t *testing.T) {
	tree := BuildBST([]float64{50, 30, 20})
	require.True(t, tree.Delete(30))
	assert.Equal(t, []float64{20, 50}, values(tree.InOrder()))

	res, ok := tree.Search(20)
	require.True(t, ok)
	assert.Equal(t, 1, res.Level, "sole child is promoted into the removed slot")
}

func TestBST_DeleteTwoChildren(t *testing.T) {
	tree := BuildBST([]float64{50, 30, 70, 60, 80, 60, 65})
	require.True(t, tree.Delete(50))

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 60.0, root.Value(), "root replaced by in-order successor")
	assert.Equal(t, 2, root.Frequency(), "successor frequency carried over")
	assert.Equal(t, []float64{30, 60, 65, 70, 80}, values(tree.InOrder()))
	assert.Equal(t, 5, tree.Len())
	assert.False(t, tree.Contains(50))
}

func TestBST_DeleteMissing(t *testing.T) {
	tree := BuildBST([]float64{1, 2})
	assert.False(t, tree.Delete(3))
	assert.False(t, NewBST().Delete(1))
	assert.Equal(t, 2, tree.Len())
}

func TestBST_DeleteRootOnly(t *testing.T) {
	tree := BuildBST([]float64{5, 5})
	require.True(t, tree.Delete(5), "delete removes the node regardless of frequency")
	assert.True(t, tree.Empty())
	assert.Empty(t, tree.InOrder())
}

func TestBST_Traversals(t *testing.T) {
	tree := BuildBST([]float64{50, 30, 70, 20, 40, 60, 80})

	assert.Equal(t, []float64{20, 30, 40, 50, 60, 70, 80}, values(tree.InOrder()))
	assert.Equal(t, []float64{50, 30, 20, 40, 70, 60, 80}, values(tree.PreOrder()))
	assert.Equal(t, []float64{20, 40, 30, 60, 80, 70, 50}, values(tree.PostOrder()))
}

func TestBST_SortedInsertDegrades(t *testing.T) {
	tree := NewBST()
	for i := 1; i <= 10; i++ {
		tree.Insert(float64(i))
	}
	assert.Equal(t, 10, tree.Height())

	lo, _ := tree.Min()
	hi, _ := tree.Max()
	assert.Equal(t, 1.0, lo.Value)
	assert.Equal(t, 10.0, hi.Value)
}

func TestBST_EmptyMinMax(t *testing.T) {
	tree := NewBST()
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Height())
}
