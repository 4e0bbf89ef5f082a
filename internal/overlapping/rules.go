package overlapping

import (
	"github.com/rybkr/wfc/internal/propagator"
)

// buildTable derives the propagator table from pairwise pattern agreement
// (spec.md §4.3 "Overlapping mode"): p and q agree in direction d iff their
// overlap region, after shifting q by offset(d), matches pixelwise. The
// table is built symmetrically by construction, satisfying the symmetry
// property required by spec.md §4.3/§8.
func buildTable(patterns []Pattern) *propagator.Table {
	n := patterns[0].N
	table := propagator.NewTable(len(patterns))

	for d := 0; d < propagator.NumDirections; d++ {
		dy, dx := propagator.Offset(d)
		for p := range patterns {
			for q := range patterns {
				if agrees(patterns[p], patterns[q], n, dy, dx) {
					table.Add(d, p, q)
				}
			}
		}
	}
	table.Finalize()
	return table
}

// agrees reports whether q, placed at offset (dy, dx) from p, is pixelwise
// consistent with p over their overlapping region.
func agrees(p, q Pattern, n, dy, dx int) bool {
	yMin, yMax := max(0, dy), min(n, n+dy)
	xMin, xMax := max(0, dx), min(n, n+dx)

	for py := yMin; py < yMax; py++ {
		for px := xMin; px < xMax; px++ {
			if p.At(py, px) != q.At(py-dy, px-dx) {
				return false
			}
		}
	}
	return true
}
