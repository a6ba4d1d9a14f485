package repository

import (
	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/dsa"
)

// SinglyLinked keeps only a head pointer: front operations are O(1), back
// operations and random access walk the chain in O(n).
type SinglyLinked struct {
	head  *dsa.SinglyNode
	count int
}

// NewSinglyLinked returns an empty, unbounded list.
func NewSinglyLinked() *SinglyLinked {
	return &SinglyLinked{}
}

// nodeAt walks to index i. Callers validate the range.
func (l *SinglyLinked) nodeAt(i int) *dsa.SinglyNode {
	p := l.head
	for k := 0; k < i; k++ {
		p = p.Next()
	}
	return p
}

func (l *SinglyLinked) InsertFront(v float64) bool {
	n := dsa.NewSinglyNode(v)
	n.SetNext(l.head)
	l.head = n
	l.count++
	return true
}

// InsertBack walks to the tail.
func (l *SinglyLinked) InsertBack(v float64) bool {
	n := dsa.NewSinglyNode(v)
	if l.head == nil {
		l.head = n
	} else {
		l.nodeAt(l.count - 1).SetNext(n)
	}
	l.count++
	return true
}

func (l *SinglyLinked) InsertAfter(i int, v float64) bool {
	if i < 0 || i >= l.count {
		return false
	}
	cur := l.nodeAt(i)
	n := dsa.NewSinglyNode(v)
	n.SetNext(cur.Next())
	cur.SetNext(n)
	l.count++
	return true
}

func (l *SinglyLinked) Update(i int, v float64) bool {
	if i < 0 || i >= l.count {
		return false
	}
	l.nodeAt(i).SetValue(v)
	return true
}

func (l *SinglyLinked) DeleteAt(i int) bool {
	if i < 0 || i >= l.count {
		return false
	}
	if i == 0 {
		l.head = l.head.Next()
	} else {
		prev := l.nodeAt(i - 1)
		prev.SetNext(prev.Next().Next())
	}
	l.count--
	return true
}

func (l *SinglyLinked) DeleteFront() bool {
	if l.count == 0 {
		return false
	}
	l.head = l.head.Next()
	l.count--
	return true
}

// DeleteBack walks to the node before the tail.
func (l *SinglyLinked) DeleteBack() bool {
	if l.count == 0 {
		return false
	}
	if l.count == 1 {
		l.head = nil
	} else {
		l.nodeAt(l.count - 2).SetNext(nil)
	}
	l.count--
	return true
}

func (l *SinglyLinked) Get(i int) (float64, error) {
	if i < 0 || i >= l.count {
		return 0, outOfRange(i, l.count)
	}
	return l.nodeAt(i).Value(), nil
}

func (l *SinglyLinked) All() []float64        { return dsa.Values(l.head, l.count) }
func (l *SinglyLinked) IndexOf(v float64) int { return dsa.IndexOf(l.head, v) }
func (l *SinglyLinked) Len() int              { return l.count }
func (l *SinglyLinked) Capacity() int         { return -1 }

func (l *SinglyLinked) Kind() domain.RepositoryKind { return domain.KindSinglyLinked }
func (l *SinglyLinked) SupportsAdvancedOps() bool   { return true }

// Reverse relinks every node in a single pass.
func (l *SinglyLinked) Reverse() error {
	var prev *dsa.SinglyNode
	cur := l.head
	for cur != nil {
		next := cur.Next()
		cur.SetNext(prev)
		prev = cur
		cur = next
	}
	l.head = prev
	return nil
}

func (l *SinglyLinked) FindFirstAtLeast(threshold float64) (int, error) {
	return dsa.FirstAtLeast(l.head, threshold), nil
}

func (l *SinglyLinked) FindDuplicateIndices() ([]int, error) {
	return dsa.DuplicateIndices(l.head), nil
}
