package sales

import (
	"github.com/rs/zerolog"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/metrics"
)

// ─── Orders ─────────────────────────────────────────────────────────────────

func (s *Service) orderEvent(o domain.Order, level zerolog.Level) {
	metrics.OrderTransitions.WithLabelValues(o.Status.String()).Inc()
	metrics.OrdersPending.Set(float64(s.orders.Pending()))
	s.log.WithLevel(level).
		Uint64("order", o.ID).
		Str("status", o.Status.String()).
		Msg("order transition")
}

// EnqueueOrder adds a pending order.
func (s *Service) EnqueueOrder(description string) (domain.Order, error) {
	o, err := s.orders.Enqueue(description)
	if err != nil {
		return o, err
	}
	s.orderEvent(o, zerolog.DebugLevel)
	return o, nil
}

// ProcessNextOrder starts the oldest pending order. ok is false when the
// queue is empty.
func (s *Service) ProcessNextOrder() (o domain.Order, ok bool, err error) {
	o, ok, err = s.orders.ProcessNext()
	if ok {
		s.orderEvent(o, zerolog.InfoLevel)
	}
	return o, ok, err
}

// FinalizeCurrentOrder completes the in-process order.
func (s *Service) FinalizeCurrentOrder() (domain.Order, error) {
	o, err := s.orders.FinalizeCurrent()
	if err == nil {
		s.orderEvent(o, zerolog.InfoLevel)
	}
	return o, err
}

// CancelNextOrder cancels the in-process order, or the oldest pending one.
func (s *Service) CancelNextOrder() (domain.Order, error) {
	o, err := s.orders.CancelNext()
	if err == nil {
		s.orderEvent(o, zerolog.InfoLevel)
	}
	return o, err
}

// ActiveOrders lists the in-process order followed by the pending queue.
func (s *Service) ActiveOrders() []domain.Order { return s.orders.Active() }

// CurrentOrder returns the in-process order, if any.
func (s *Service) CurrentOrder() (domain.Order, bool) { return s.orders.Current() }

// OrderHistory returns completed and cancelled orders, oldest first.
func (s *Service) OrderHistory() []domain.Order { return s.orders.History() }

// PendingOrders returns the queue length, excluding the in-process order.
func (s *Service) PendingOrders() int { return s.orders.Pending() }
