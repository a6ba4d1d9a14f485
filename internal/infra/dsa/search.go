package dsa

// ─── Linked-List Search ─────────────────────────────────────────────────────
// The walkers below are written once against any cell type that exposes a
// value and a forward link, and are shared by the singly and doubly linked
// repositories.

// Walkable is satisfied by pointer cell types such as *SinglyNode and
// *DoublyNode. The zero value of N terminates a walk.
type Walkable[N any] interface {
	comparable
	Value() float64
	Next() N
}

// IndexWhere returns the index of the first cell whose value satisfies match,
// or -1.
func IndexWhere[N Walkable[N]](head N, match func(float64) bool) int {
	var end N
	i := 0
	for p := head; p != end; p = p.Next() {
		if match(p.Value()) {
			return i
		}
		i++
	}
	return -1
}

// IndexOf returns the index of the first cell equal to v, or -1.
func IndexOf[N Walkable[N]](head N, v float64) int {
	return IndexWhere(head, func(x float64) bool { return x == v })
}

// FirstAtLeast returns the index of the first cell >= threshold, or -1.
func FirstAtLeast[N Walkable[N]](head N, threshold float64) int {
	return IndexWhere(head, func(x float64) bool { return x >= threshold })
}

// DuplicateIndices returns, in ascending order, every index whose value
// equals some earlier cell. First occurrences are never reported.
// Runs in O(n²): each cell is compared against all cells before it.
func DuplicateIndices[N Walkable[N]](head N) []int {
	var end N
	dups := []int{}
	i := 0
	for cur := head; cur != end; cur = cur.Next() {
		j := 0
		for prev := head; j < i; prev = prev.Next() {
			if prev.Value() == cur.Value() {
				dups = append(dups, i)
				break
			}
			j++
		}
		i++
	}
	return dups
}

// Values collects every value from head onwards.
func Values[N Walkable[N]](head N, sizeHint int) []float64 {
	var end N
	out := make([]float64, 0, sizeHint)
	for p := head; p != end; p = p.Next() {
		out = append(out, p.Value())
	}
	return out
}
