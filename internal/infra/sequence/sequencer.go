// Package sequence issues strictly increasing identifiers.
package sequence

import "sync/atomic"

// Sequencer hands out monotonic IDs. It is safe for concurrent use; it is the
// only concurrency-safe component of the core.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next ID.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued ID, or the start value if none was issued.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Orders is the process-wide order ID source. Every order queue draws from it,
// so IDs stay unique across queues and survive a service reset.
var Orders = New(0)
