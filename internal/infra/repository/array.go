// Package repository provides the three interchangeable SequenceRepository
// backings: a fixed-capacity array, a singly linked list, and a doubly linked
// list. They share one contract but deliberately keep different cost models.
package repository

import (
	"fmt"

	"github.com/tutu-network/salesdesk/internal/domain"
)

// Compile-time contract assertions.
var (
	_ domain.SequenceRepository = (*Array)(nil)
	_ domain.SequenceRepository = (*SinglyLinked)(nil)
	_ domain.SequenceRepository = (*DoublyLinked)(nil)
)

// Array is a fixed-capacity repository over a preallocated slice.
// Back insert/delete and random access are O(1); front insert/delete shift
// every element and are O(n).
type Array struct {
	data  []float64
	count int
}

// NewArray allocates a repository holding at most capacity values.
func NewArray(capacity int) (*Array, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", domain.ErrInvalidCapacity, capacity)
	}
	return &Array{data: make([]float64, capacity)}, nil
}

func (a *Array) full() bool { return a.count >= len(a.data) }

// InsertFront shifts every value one slot right.
func (a *Array) InsertFront(v float64) bool {
	if a.full() {
		return false
	}
	for i := a.count; i > 0; i-- {
		a.data[i] = a.data[i-1]
	}
	a.data[0] = v
	a.count++
	return true
}

func (a *Array) InsertBack(v float64) bool {
	if a.full() {
		return false
	}
	a.data[a.count] = v
	a.count++
	return true
}

func (a *Array) InsertAfter(i int, v float64) bool {
	if a.full() || i < 0 || i >= a.count {
		return false
	}
	for k := a.count; k > i+1; k-- {
		a.data[k] = a.data[k-1]
	}
	a.data[i+1] = v
	a.count++
	return true
}

func (a *Array) Update(i int, v float64) bool {
	if i < 0 || i >= a.count {
		return false
	}
	a.data[i] = v
	return true
}

func (a *Array) DeleteAt(i int) bool {
	if i < 0 || i >= a.count {
		return false
	}
	for k := i; k < a.count-1; k++ {
		a.data[k] = a.data[k+1]
	}
	a.count--
	a.data[a.count] = 0
	return true
}

func (a *Array) DeleteFront() bool {
	if a.count == 0 {
		return false
	}
	return a.DeleteAt(0)
}

func (a *Array) DeleteBack() bool {
	if a.count == 0 {
		return false
	}
	a.count--
	a.data[a.count] = 0
	return true
}

func (a *Array) Get(i int) (float64, error) {
	if i < 0 || i >= a.count {
		return 0, outOfRange(i, a.count)
	}
	return a.data[i], nil
}

func (a *Array) All() []float64 {
	out := make([]float64, a.count)
	copy(out, a.data[:a.count])
	return out
}

func (a *Array) IndexOf(v float64) int {
	for i := 0; i < a.count; i++ {
		if a.data[i] == v {
			return i
		}
	}
	return -1
}

func (a *Array) Len() int                    { return a.count }
func (a *Array) Capacity() int               { return len(a.data) }
func (a *Array) Kind() domain.RepositoryKind { return domain.KindArray }
func (a *Array) SupportsAdvancedOps() bool   { return false }

func (a *Array) Reverse() error { return unsupported("reverse", domain.KindArray) }

func (a *Array) FindFirstAtLeast(float64) (int, error) {
	return -1, unsupported("find first at least", domain.KindArray)
}

func (a *Array) FindDuplicateIndices() ([]int, error) {
	return nil, unsupported("find duplicates", domain.KindArray)
}

func outOfRange(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", domain.ErrIndexOutOfRange, i, size)
}

func unsupported(op string, kind domain.RepositoryKind) error {
	return fmt.Errorf("%w: %s on %s", domain.ErrUnsupportedOperation, op, kind.DisplayName())
}
