package dsa

type stackCell[T any] struct {
	value T
	next  *stackCell[T]
}

// Stack is a LIFO stack built on a singly linked chain.
type Stack[T any] struct {
	top  *stackCell[T]
	size int
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) {
	s.top = &stackCell[T]{value: v, next: s.top}
	s.size++
}

// Pop removes and returns the top value. ok is false on an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.top == nil {
		return v, false
	}
	v = s.top.value
	s.top = s.top.next
	s.size--
	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.top == nil {
		return v, false
	}
	return s.top.value, true
}

func (s *Stack[T]) Len() int    { return s.size }
func (s *Stack[T]) Empty() bool { return s.top == nil }
