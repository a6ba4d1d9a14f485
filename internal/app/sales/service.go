// Package sales is the orchestrating service: it owns the paired sales and
// target repositories, the regional matrix and the order queue, and exposes
// every operation the shell calls. A Service is an explicit context object;
// switching repository kind replaces its held state in place.
package sales

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tutu-network/salesdesk/internal/app/orders"
	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/metrics"
	"github.com/tutu-network/salesdesk/internal/infra/regional"
	"github.com/tutu-network/salesdesk/internal/infra/repository"
)

// Demo data loaded by Reset when preloading is enabled. Each index is one
// month pair.
var (
	DemoSales   = []float64{1200.5, 1500, 1700.75, 1100, 1800, 1800}
	DemoTargets = []float64{1000, 1400, 1600, 1200, 1900, 1800}
)

// Options configures a Service.
type Options struct {
	Kind     domain.RepositoryKind
	Capacity int // array capacity and month limit for every kind
	Regions  int
	Months   int
	Range    domain.ValueRange
	Preload  bool
}

// DefaultOptions returns a doubly linked, 12-month, 3×12 configuration with
// demo data.
func DefaultOptions() Options {
	return Options{
		Kind:     domain.KindDoublyLinked,
		Capacity: 12,
		Regions:  3,
		Months:   12,
		Range:    domain.DefaultValueRange(),
		Preload:  true,
	}
}

// Service is not safe for concurrent use. Callers serialize access.
type Service struct {
	opts    Options
	log     zerolog.Logger
	kind    domain.RepositoryKind
	sales   domain.SequenceRepository
	targets domain.SequenceRepository
	matrix  *regional.Matrix
	orders  *orders.Processor
}

// New builds a Service of opts.Kind, preloading demo data when requested.
func New(opts Options, log zerolog.Logger) (*Service, error) {
	if opts.Capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", domain.ErrInvalidCapacity, opts.Capacity)
	}
	s := &Service{
		opts: opts,
		log:  log.With().Str("component", "sales").Logger(),
	}
	if err := s.Reset(opts.Kind); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards every repository, the regional matrix and the order queue,
// and rebuilds them empty with the given kind. Demo data is then preloaded
// if enabled. On error the previous state is kept. Order IDs keep counting
// from the process-wide sequence.
func (s *Service) Reset(kind domain.RepositoryKind) error {
	sales, err := repository.New(kind, s.opts.Capacity)
	if err != nil {
		return fmt.Errorf("reset sales: %w", err)
	}
	targets, err := repository.New(kind, s.opts.Capacity)
	if err != nil {
		return fmt.Errorf("reset targets: %w", err)
	}

	prev := *s
	s.kind = kind
	s.sales = sales
	s.targets = targets
	s.matrix = regional.New(s.opts.Regions, s.opts.Months)
	s.orders = orders.NewProcessor()

	if s.opts.Preload {
		if err := s.preload(); err != nil {
			*s = prev
			return fmt.Errorf("preload demo data: %w", err)
		}
	}

	metrics.ServiceResets.WithLabelValues(string(kind)).Inc()
	metrics.OrdersPending.Set(0)
	s.observeSize()
	s.log.Info().Str("kind", string(kind)).Int("records", s.sales.Len()).Msg("service reset")
	return nil
}

// preload loads demo pairs up to the month limit.
func (s *Service) preload() error {
	for i := range min(len(DemoSales), s.opts.Capacity) {
		if err := s.AddLast(DemoSales[i], DemoTargets[i]); err != nil {
			return err
		}
	}
	return nil
}

// Kind returns the active repository kind.
func (s *Service) Kind() domain.RepositoryKind { return s.kind }

// Options returns the configuration the service was built with.
func (s *Service) Options() Options { return s.opts }

// Capacity is the month limit shared by both entities.
func (s *Service) Capacity() int { return s.opts.Capacity }

// repo resolves an entity to its repository.
func (s *Service) repo(e domain.Entity) (domain.SequenceRepository, error) {
	switch e {
	case domain.EntitySales:
		return s.sales, nil
	case domain.EntityTargets:
		return s.targets, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEntity, e)
}

// ─── Metrics ────────────────────────────────────────────────────────────────

// resultLabel maps an error to its category for metric labels.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrCapacity):
		return "capacity"
	case errors.Is(err, domain.ErrMisuse):
		return "misuse"
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "index"
	case errors.Is(err, domain.ErrArithmetic):
		return "arithmetic"
	case errors.Is(err, domain.ErrParse):
		return "parse"
	}
	return "error"
}

func (s *Service) record(op string, err error) {
	metrics.RepositoryOps.WithLabelValues(string(s.kind), op, resultLabel(err)).Inc()
	if err == nil {
		s.observeSize()
	}
}

func (s *Service) observeSize() {
	metrics.RecordsHeld.WithLabelValues(string(domain.EntitySales)).Set(float64(s.sales.Len()))
	metrics.RecordsHeld.WithLabelValues(string(domain.EntityTargets)).Set(float64(s.targets.Len()))
}
