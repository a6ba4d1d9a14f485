package sales

import (
	"fmt"

	"github.com/tutu-network/salesdesk/internal/domain"
)

// ─── Paired Records ─────────────────────────────────────────────────────────
// A record is one month: a sale at index i of the sales repository and a
// target at index i of the targets repository. Every mutation here touches
// both, so the two repositories always have equal length.

func (s *Service) checkPair(sale, target float64) error {
	if err := s.opts.Range.Check("sale", sale); err != nil {
		return err
	}
	return s.opts.Range.Check("target", target)
}

func (s *Service) checkRoom() error {
	if s.sales.Len() >= s.opts.Capacity {
		return fmt.Errorf("%w: at most %d months", domain.ErrMonthLimitReached, s.opts.Capacity)
	}
	return nil
}

func (s *Service) checkIndex(i int) error {
	if i < 0 || i >= s.sales.Len() {
		return fmt.Errorf("%w: month %d, %d recorded", domain.ErrIndexOutOfRange, i+1, s.sales.Len())
	}
	return nil
}

// insertPair runs ins against both repositories and undoes the sales half
// if the targets half is refused.
func (s *Service) insertPair(sale, target float64, ins func(domain.SequenceRepository, float64) bool, undo func(domain.SequenceRepository) bool) error {
	if err := s.checkPair(sale, target); err != nil {
		return err
	}
	if err := s.checkRoom(); err != nil {
		return err
	}
	if !ins(s.sales, sale) {
		return domain.ErrRepositoryFull
	}
	if !ins(s.targets, target) {
		undo(s.sales)
		return domain.ErrRepositoryFull
	}
	return nil
}

// AddFirst inserts a month pair at the front.
func (s *Service) AddFirst(sale, target float64) error {
	err := s.insertPair(sale, target,
		func(r domain.SequenceRepository, v float64) bool { return r.InsertFront(v) },
		func(r domain.SequenceRepository) bool { return r.DeleteFront() })
	s.record("add_first", err)
	return err
}

// AddLast appends a month pair.
func (s *Service) AddLast(sale, target float64) error {
	err := s.insertPair(sale, target,
		func(r domain.SequenceRepository, v float64) bool { return r.InsertBack(v) },
		func(r domain.SequenceRepository) bool { return r.DeleteBack() })
	s.record("add_last", err)
	return err
}

// InsertAfter inserts a month pair directly after index i.
func (s *Service) InsertAfter(i int, sale, target float64) error {
	err := s.checkIndex(i)
	if err == nil {
		err = s.insertPair(sale, target,
			func(r domain.SequenceRepository, v float64) bool { return r.InsertAfter(i, v) },
			func(r domain.SequenceRepository) bool { return r.DeleteAt(i + 1) })
	}
	s.record("insert_after", err)
	return err
}

// DeleteFirst removes the first month pair.
func (s *Service) DeleteFirst() error {
	err := s.deletePair(0)
	s.record("delete_first", err)
	return err
}

// DeleteLast removes the last month pair.
func (s *Service) DeleteLast() error {
	err := s.deletePair(s.sales.Len() - 1)
	s.record("delete_last", err)
	return err
}

// DeleteRecord removes the month pair at index i.
func (s *Service) DeleteRecord(i int) error {
	err := s.deletePair(i)
	s.record("delete", err)
	return err
}

func (s *Service) deletePair(i int) error {
	if s.sales.Len() == 0 {
		return domain.ErrNoSalesData
	}
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.sales.DeleteAt(i)
	s.targets.DeleteAt(i)
	return nil
}

// UpdateRecord replaces both values of month i.
func (s *Service) UpdateRecord(i int, sale, target float64) error {
	err := s.checkIndex(i)
	if err == nil {
		err = s.checkPair(sale, target)
	}
	if err == nil {
		s.setSale(i, sale)
		s.targets.Update(i, target)
	}
	s.record("update", err)
	return err
}

// UpdateSale replaces the sale of month i. Regions that already hold the
// month receive the new value.
func (s *Service) UpdateSale(i int, v float64) error {
	err := s.checkIndex(i)
	if err == nil {
		err = s.opts.Range.Check("sale", v)
	}
	if err == nil {
		s.setSale(i, v)
	}
	s.record("update_sale", err)
	return err
}

// UpdateTarget replaces the target of month i.
func (s *Service) UpdateTarget(i int, v float64) error {
	err := s.checkIndex(i)
	if err == nil {
		err = s.opts.Range.Check("target", v)
	}
	if err == nil {
		s.targets.Update(i, v)
	}
	s.record("update_target", err)
	return err
}

func (s *Service) setSale(i int, v float64) {
	s.sales.Update(i, v)
	for r := 0; r < s.matrix.Regions(); r++ {
		if cur, ok := s.matrix.Get(r, i); ok && cur != 0 {
			s.matrix.Set(r, i, v)
		}
	}
}

// Sales returns a snapshot of the sales values in month order.
func (s *Service) Sales() []float64 { return s.sales.All() }

// Targets returns a snapshot of the target values in month order.
func (s *Service) Targets() []float64 { return s.targets.All() }

// Len returns the number of recorded months.
func (s *Service) Len() int { return s.sales.Len() }
