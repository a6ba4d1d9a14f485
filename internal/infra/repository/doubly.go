package repository

import (
	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/dsa"
)

// DoublyLinked keeps head and tail pointers, so both ends are O(1).
// Positional access walks from whichever end is closer.
type DoublyLinked struct {
	head  *dsa.DoublyNode
	tail  *dsa.DoublyNode
	count int
}

// NewDoublyLinked returns an empty, unbounded list.
func NewDoublyLinked() *DoublyLinked {
	return &DoublyLinked{}
}

// nodeAt walks from the nearer end. Callers validate the range.
func (l *DoublyLinked) nodeAt(i int) *dsa.DoublyNode {
	if i < l.count/2 {
		p := l.head
		for k := 0; k < i; k++ {
			p = p.Next()
		}
		return p
	}
	p := l.tail
	for k := l.count - 1; k > i; k-- {
		p = p.Prev()
	}
	return p
}

func (l *DoublyLinked) InsertFront(v float64) bool {
	n := dsa.NewDoublyNode(v)
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.SetNext(l.head)
		l.head.SetPrev(n)
		l.head = n
	}
	l.count++
	return true
}

func (l *DoublyLinked) InsertBack(v float64) bool {
	n := dsa.NewDoublyNode(v)
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.SetNext(n)
		n.SetPrev(l.tail)
		l.tail = n
	}
	l.count++
	return true
}

func (l *DoublyLinked) InsertAfter(i int, v float64) bool {
	if i < 0 || i >= l.count {
		return false
	}
	if i == l.count-1 {
		return l.InsertBack(v)
	}
	cur := l.nodeAt(i)
	next := cur.Next()
	n := dsa.NewDoublyNode(v)
	n.SetPrev(cur)
	n.SetNext(next)
	cur.SetNext(n)
	next.SetPrev(n)
	l.count++
	return true
}

func (l *DoublyLinked) Update(i int, v float64) bool {
	if i < 0 || i >= l.count {
		return false
	}
	l.nodeAt(i).SetValue(v)
	return true
}

func (l *DoublyLinked) DeleteAt(i int) bool {
	if i < 0 || i >= l.count {
		return false
	}
	switch {
	case l.count == 1:
		l.head, l.tail = nil, nil
	case i == 0:
		l.head = l.head.Next()
		l.head.SetPrev(nil)
	case i == l.count-1:
		l.tail = l.tail.Prev()
		l.tail.SetNext(nil)
	default:
		n := l.nodeAt(i)
		n.Prev().SetNext(n.Next())
		n.Next().SetPrev(n.Prev())
	}
	l.count--
	return true
}

func (l *DoublyLinked) DeleteFront() bool {
	if l.count == 0 {
		return false
	}
	return l.DeleteAt(0)
}

func (l *DoublyLinked) DeleteBack() bool {
	if l.count == 0 {
		return false
	}
	return l.DeleteAt(l.count - 1)
}

func (l *DoublyLinked) Get(i int) (float64, error) {
	if i < 0 || i >= l.count {
		return 0, outOfRange(i, l.count)
	}
	return l.nodeAt(i).Value(), nil
}

func (l *DoublyLinked) All() []float64        { return dsa.Values(l.head, l.count) }
func (l *DoublyLinked) IndexOf(v float64) int { return dsa.IndexOf(l.head, v) }
func (l *DoublyLinked) Len() int              { return l.count }
func (l *DoublyLinked) Capacity() int         { return -1 }

func (l *DoublyLinked) Kind() domain.RepositoryKind { return domain.KindDoublyLinked }
func (l *DoublyLinked) SupportsAdvancedOps() bool   { return true }

// Reverse swaps every node's links and exchanges head and tail.
func (l *DoublyLinked) Reverse() error {
	for cur := l.head; cur != nil; {
		next := cur.Next()
		cur.SetNext(cur.Prev())
		cur.SetPrev(next)
		cur = next
	}
	l.head, l.tail = l.tail, l.head
	return nil
}

func (l *DoublyLinked) FindFirstAtLeast(threshold float64) (int, error) {
	return dsa.FirstAtLeast(l.head, threshold), nil
}

func (l *DoublyLinked) FindDuplicateIndices() ([]int, error) {
	return dsa.DuplicateIndices(l.head), nil
}
