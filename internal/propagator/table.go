// Package propagator implements the propagator table (spec.md §3, §4.3,
// component C3) and the AC-3-style propagation engine with compatibility
// counters (spec.md §4.5, component C5).
package propagator

import (
	"fmt"
	"sort"
)

// Direction indices follow spec.md §3: 0=+x (right), 1=-y (up), 2=-x (left),
// 3=+y (down). Direction d's opposite is d^2.
const NumDirections = 4

// Opposite returns the direction opposite d.
func Opposite(d int) int { return d ^ 2 }

// Offset returns the (dy, dx) cell offset for direction d.
func Offset(d int) (dy, dx int) {
	switch d {
	case 0:
		return 0, 1
	case 1:
		return -1, 0
	case 2:
		return 0, -1
	case 3:
		return 1, 0
	default:
		panic(fmt.Sprintf("propagator: invalid direction %d", d))
	}
}

// Table holds, for each (direction, pattern p), the sorted list of pattern
// indices q allowed at the neighboring cell in that direction.
type Table struct {
	PatternCount int
	dirs         [NumDirections][][]int // dirs[d][p] = sorted pattern indices
}

// NewTable constructs an empty table for patternCount patterns.
func NewTable(patternCount int) *Table {
	t := &Table{PatternCount: patternCount}
	for d := 0; d < NumDirections; d++ {
		t.dirs[d] = make([][]int, patternCount)
	}
	return t
}

// Allowed returns the (unsorted-safe, already-sorted) list of patterns
// allowed at the neighbor in direction d from pattern p.
func (t *Table) Allowed(d, p int) []int {
	return t.dirs[d][p]
}

// Add records that q is allowed at the neighbor of p in direction d. Callers
// are responsible for also adding the symmetric counterpart (q, opp(d), p)
// unless using AddSymmetric.
func (t *Table) Add(d, p, q int) {
	t.dirs[d][p] = append(t.dirs[d][p], q)
}

// AddSymmetric records both q ∈ propagator[d][p] and p ∈ propagator[opp(d)][q],
// maintaining the symmetry property required by spec.md §4.3/§8.
func (t *Table) AddSymmetric(d, p, q int) {
	t.Add(d, p, q)
	t.Add(Opposite(d), q, p)
}

// Finalize sorts and deduplicates every adjacency list. Call once after all
// rules have been added, before using the table in an Engine.
func (t *Table) Finalize() {
	for d := 0; d < NumDirections; d++ {
		for p := range t.dirs[d] {
			list := t.dirs[d][p]
			if len(list) == 0 {
				continue
			}
			sort.Ints(list)
			out := list[:1]
			for _, q := range list[1:] {
				if q != out[len(out)-1] {
					out = append(out, q)
				}
			}
			t.dirs[d][p] = out
		}
	}
}

// AssertSymmetric verifies q ∈ propagator[d][p] ⇔ p ∈ propagator[opp(d)][q]
// for every p, q, d (spec.md §4.3, §8 invariant 3). It returns an error
// describing the first violation found, or nil if the table is symmetric.
// Intended for use in tests and debug builds, per spec.md §4.3's
// "implementations should assert this post-construction".
func (t *Table) AssertSymmetric() error {
	for d := 0; d < NumDirections; d++ {
		od := Opposite(d)
		for p, qs := range t.dirs[d] {
			for _, q := range qs {
				if !contains(t.dirs[od][q], p) {
					return fmt.Errorf("propagator: asymmetric rule: %d in dirs[%d][%d] but %d not in dirs[%d][%d]",
						q, d, p, p, od, q)
				}
			}
		}
	}
	return nil
}

func contains(sorted []int, v int) bool {
	i := sort.SearchInts(sorted, v)
	return i < len(sorted) && sorted[i] == v
}
