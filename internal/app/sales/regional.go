package sales

import (
	"fmt"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/dsa"
)

// ─── Regional ───────────────────────────────────────────────────────────────

// RegionalMatrix returns a deep copy of the regions × months grid.
func (s *Service) RegionalMatrix() [][]float64 { return s.matrix.Snapshot() }

// RegionalShape returns the grid dimensions.
func (s *Service) RegionalShape() (regions, months int) {
	return s.matrix.Regions(), s.matrix.Months()
}

// AssignRegional writes v directly into the grid. It reports false when
// either coordinate is out of range.
func (s *Service) AssignRegional(region, month int, v float64) bool {
	return s.matrix.Set(region, month, v)
}

func (s *Service) checkRegion(region int) error {
	if region < 0 || region >= s.matrix.Regions() {
		return fmt.Errorf("%w: region %d of %d", domain.ErrInvalidRegion, region+1, s.matrix.Regions())
	}
	return nil
}

// AssignMonth gives month m to a region, copying the month's sale into the
// region's cell. A month can belong to only one region at a time.
func (s *Service) AssignMonth(region, month int) error {
	if err := s.checkRegion(region); err != nil {
		return err
	}
	if month < 0 || month >= min(s.sales.Len(), s.matrix.Months()) {
		return fmt.Errorf("%w: month %d", domain.ErrInvalidMonth, month+1)
	}
	if s.matrix.Assigned(month) {
		return fmt.Errorf("%w: month %d", domain.ErrMonthAlreadyAssigned, month+1)
	}
	v, err := s.sales.Get(month)
	if err != nil {
		return err
	}
	s.matrix.Set(region, month, v)
	s.log.Debug().Int("region", region).Int("month", month).Float64("value", v).Msg("month assigned")
	return nil
}

// ReleaseMonth clears the region's cell for month m.
func (s *Service) ReleaseMonth(region, month int) error {
	if err := s.checkRegion(region); err != nil {
		return err
	}
	if !s.matrix.Set(region, month, 0) {
		return fmt.Errorf("%w: month %d", domain.ErrInvalidMonth, month+1)
	}
	return nil
}

// AvailableMonths lists recorded months not yet held by any region, with
// their sale values.
func (s *Service) AvailableMonths() []domain.MonthSlot {
	sales := s.sales.All()
	out := make([]domain.MonthSlot, 0, len(sales))
	for m := 0; m < min(len(sales), s.matrix.Months()); m++ {
		if !s.matrix.Assigned(m) {
			out = append(out, domain.MonthSlot{Month: m, Value: sales[m]})
		}
	}
	return out
}

// AssignedMonths lists the months held by a region with the cell values.
// An invalid region yields an empty list.
func (s *Service) AssignedMonths(region int) []domain.MonthSlot {
	var out []domain.MonthSlot
	for m := 0; m < s.matrix.Months(); m++ {
		if v, ok := s.matrix.Get(region, m); ok && v != 0 {
			out = append(out, domain.MonthSlot{Month: m, Value: v})
		}
	}
	return out
}

// ─── Tree ───────────────────────────────────────────────────────────────────

// BuildSalesTree returns a search tree over the current sales values. The
// tree is a snapshot and is not updated by later mutations.
func (s *Service) BuildSalesTree() (*dsa.BST, error) {
	if s.sales.Len() == 0 {
		return nil, domain.ErrNoSalesData
	}
	return dsa.BuildBST(s.sales.All()), nil
}
