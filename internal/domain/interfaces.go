package domain

// ─── Repository Contracts ───────────────────────────────────────────────────
// Infrastructure implements them; the sales service depends on them.

// SequenceRepository is an ordered, 0-indexed collection of values with a
// uniform CRUD contract independent of its backing structure.
//
// Mutators report expected failures (bad index, full, empty) with false
// rather than an error.
type SequenceRepository interface {
	InsertFront(v float64) bool
	InsertBack(v float64) bool

	// InsertAfter places v directly after index i.
	InsertAfter(i int, v float64) bool

	Update(i int, v float64) bool
	DeleteAt(i int) bool
	DeleteFront() bool
	DeleteBack() bool

	// Get returns ErrIndexOutOfRange when i is outside [0, Len).
	Get(i int) (float64, error)

	// All returns a snapshot in index order.
	All() []float64

	Len() int

	// IndexOf returns the first index holding v, or -1.
	IndexOf(v float64) int

	// Capacity returns the maximum size, or -1 when unbounded.
	Capacity() int

	Kind() RepositoryKind

	// SupportsAdvancedOps reports whether the AdvancedListOps methods do
	// real work. Check it before calling them.
	SupportsAdvancedOps() bool

	AdvancedListOps
}

// AdvancedListOps is the optional capability implemented by the linked
// variants. Fixed-capacity repositories return ErrUnsupportedOperation.
type AdvancedListOps interface {
	// Reverse reverses the collection in place.
	Reverse() error

	// FindFirstAtLeast returns the first index whose value is >= threshold,
	// or -1.
	FindFirstAtLeast(threshold float64) (int, error)

	// FindDuplicateIndices returns, ascending, every index whose value
	// already appeared at a lower index.
	FindDuplicateIndices() ([]int, error)
}
