// Package orders implements the order queue and its lifecycle:
//
//	Pending ──ProcessNext──▶ InProcess ──FinalizeCurrent──▶ Completed
//	   │                        │
//	   └───────CancelNext───────┴──────────────────────────▶ Cancelled
//
// At most one order is in process at a time. Terminal orders move to an
// append-only history.
package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/dsa"
	"github.com/tutu-network/salesdesk/internal/infra/sequence"
)

// Processor owns a FIFO of pending orders, the single in-process slot and
// the history. It is not safe for concurrent use.
type Processor struct {
	pending *dsa.Queue[*domain.Order]
	current *domain.Order
	history []domain.Order
	ids     *sequence.Sequencer
	now     func() time.Time
}

// NewProcessor returns an empty processor drawing IDs from the process-wide
// order sequencer.
func NewProcessor() *Processor {
	return NewProcessorWithSequencer(sequence.Orders)
}

// NewProcessorWithSequencer returns an empty processor drawing IDs from ids.
func NewProcessorWithSequencer(ids *sequence.Sequencer) *Processor {
	return &Processor{
		pending: dsa.NewQueue[*domain.Order](),
		ids:     ids,
		now:     time.Now,
	}
}

// Enqueue appends a new Pending order. The description is trimmed and must
// not be empty.
func (p *Processor) Enqueue(description string) (domain.Order, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return domain.Order{}, domain.ErrEmptyDescription
	}
	o := &domain.Order{
		ID:          p.ids.Next(),
		Description: desc,
		Status:      domain.OrderPending,
		CreatedAt:   p.now(),
	}
	p.pending.Enqueue(o)
	return *o, nil
}

// ProcessNext moves the queue head into the in-process slot. It returns
// ok=false with no error when nothing is pending.
func (p *Processor) ProcessNext() (domain.Order, bool, error) {
	if p.current != nil {
		return domain.Order{}, false, fmt.Errorf("%w (id %d)", domain.ErrOrderInProcess, p.current.ID)
	}
	o, ok := p.pending.Dequeue()
	if !ok {
		return domain.Order{}, false, nil
	}
	o.Status = domain.OrderInProcess
	p.current = o
	return *o, true, nil
}

// FinalizeCurrent completes the in-process order and records it.
func (p *Processor) FinalizeCurrent() (domain.Order, error) {
	if p.current == nil {
		return domain.Order{}, domain.ErrNoOrderInProcess
	}
	o := p.current
	p.current = nil
	o.Status = domain.OrderCompleted
	p.history = append(p.history, *o)
	return *o, nil
}

// CancelNext cancels the in-process order if there is one, otherwise the
// head of the queue.
func (p *Processor) CancelNext() (domain.Order, error) {
	o := p.current
	if o != nil {
		p.current = nil
	} else {
		var ok bool
		if o, ok = p.pending.Dequeue(); !ok {
			return domain.Order{}, domain.ErrNothingToCancel
		}
	}
	o.Status = domain.OrderCancelled
	p.history = append(p.history, *o)
	return *o, nil
}

// Active lists the in-process order (if any) followed by pending orders in
// FIFO order. The queue is drained into a scratch queue and restored.
func (p *Processor) Active() []domain.Order {
	out := make([]domain.Order, 0, p.pending.Len()+1)
	if p.current != nil {
		out = append(out, *p.current)
	}
	scratch := dsa.NewQueue[*domain.Order]()
	for {
		o, ok := p.pending.Dequeue()
		if !ok {
			break
		}
		out = append(out, *o)
		scratch.Enqueue(o)
	}
	p.pending = scratch
	return out
}

// Current returns the in-process order.
func (p *Processor) Current() (domain.Order, bool) {
	if p.current == nil {
		return domain.Order{}, false
	}
	return *p.current, true
}

// History returns a copy of completed and cancelled orders, oldest first.
func (p *Processor) History() []domain.Order {
	return append([]domain.Order(nil), p.history...)
}

// Pending returns the number of queued orders, excluding the in-process one.
func (p *Processor) Pending() int { return p.pending.Len() }
