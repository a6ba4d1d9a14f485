package sales

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tutu-network/salesdesk/internal/domain"
)

// Dashboard pairs each month's sale with its target. A zero target has no
// compliance outcome.
func (s *Service) Dashboard() []domain.DashboardRow {
	sales, targets := s.sales.All(), s.targets.All()
	rows := make([]domain.DashboardRow, min(len(sales), len(targets)))
	for i := range rows {
		rows[i] = domain.DashboardRow{
			Month:      i,
			Sale:       sales[i],
			Target:     targets[i],
			Compliance: compliance(sales[i], targets[i]),
		}
	}
	return rows
}

func compliance(sale, target float64) domain.Compliance {
	switch {
	case target == 0:
		return domain.ComplianceNotApplicable
	case sale >= target:
		return domain.ComplianceMet
	}
	return domain.ComplianceMissed
}

// Summary aggregates totals, means and sample standard deviations.
func (s *Service) Summary() domain.Summary {
	sales, targets := s.sales.All(), s.targets.All()
	sum := domain.Summary{
		Months:       len(sales),
		TotalSales:   floats.Sum(sales),
		TotalTargets: floats.Sum(targets),
	}
	if len(sales) > 0 {
		sum.MeanSale = stat.Mean(sales, nil)
		sum.MeanTarget = stat.Mean(targets, nil)
	}
	// Sample deviation of a single value is undefined.
	if len(sales) > 1 {
		sum.StdDevSale = stat.StdDev(sales, nil)
		sum.StdDevTarget = stat.StdDev(targets, nil)
	}
	for _, row := range s.Dashboard() {
		if row.Compliance == domain.ComplianceMet {
			sum.MonthsMet++
		}
	}
	return sum
}
