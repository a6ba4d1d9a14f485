package dsa

type queueCell[T any] struct {
	value T
	next  *queueCell[T]
}

// Queue is a FIFO queue with head and tail pointers, giving O(1) enqueue
// and dequeue.
type Queue[T any] struct {
	head *queueCell[T]
	tail *queueCell[T]
	size int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	c := &queueCell[T]{value: v}
	if q.tail == nil {
		q.head = c
	} else {
		q.tail.next = c
	}
	q.tail = c
	q.size++
}

// Dequeue removes and returns the head value. ok is false on an empty queue.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.head == nil {
		return v, false
	}
	v = q.head.value
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return v, true
}

// Peek returns the head value without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.head == nil {
		return v, false
	}
	return q.head.value, true
}

func (q *Queue[T]) Len() int    { return q.size }
func (q *Queue[T]) Empty() bool { return q.head == nil }
