// Package regional holds the fixed regions × months grid of sale values.
// A zero cell means the month has not been assigned to that region.
package regional

// Matrix is a dense regions × months grid. Its shape never changes after New.
type Matrix struct {
	cells   [][]float64
	regions int
	months  int
}

// New allocates a zeroed grid. Non-positive dimensions yield an empty grid
// on which every Set fails.
func New(regions, months int) *Matrix {
	regions, months = max(regions, 0), max(months, 0)
	cells := make([][]float64, regions)
	for r := range cells {
		cells[r] = make([]float64, months)
	}
	return &Matrix{cells: cells, regions: regions, months: months}
}

func (m *Matrix) Regions() int { return m.regions }
func (m *Matrix) Months() int  { return m.months }

func (m *Matrix) inRange(region, month int) bool {
	return region >= 0 && region < m.regions && month >= 0 && month < m.months
}

// Set writes v at (region, month). It reports false and leaves the grid
// unchanged when either coordinate is out of range.
func (m *Matrix) Set(region, month int, v float64) bool {
	if !m.inRange(region, month) {
		return false
	}
	m.cells[region][month] = v
	return true
}

// Get returns the cell value and whether the coordinates were valid.
func (m *Matrix) Get(region, month int) (float64, bool) {
	if !m.inRange(region, month) {
		return 0, false
	}
	return m.cells[region][month], true
}

// Assigned reports whether any region holds a non-zero value for month.
func (m *Matrix) Assigned(month int) bool {
	if month < 0 || month >= m.months {
		return false
	}
	for r := 0; r < m.regions; r++ {
		if m.cells[r][month] != 0 {
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy; mutating it does not affect the grid.
func (m *Matrix) Snapshot() [][]float64 {
	out := make([][]float64, m.regions)
	for r, row := range m.cells {
		out[r] = append([]float64(nil), row...)
	}
	return out
}
