package propagator

import (
	"github.com/rybkr/wfc/internal/wave"
)

// cellPattern names a single compatibility-counter worklist entry.
type cellPattern struct {
	cell    int
	pattern int
}

// Engine is the AC-3-style propagation engine of spec.md §4.5. It owns the
// per-(cell, pattern, direction) compatibility counters and drives a wave
// toward local consistency after each observation.
//
// The engine keeps a reference to the wave it was constructed with and is
// not reused across tries — callers construct a fresh Engine (via
// NewEngine) for each try, same as the wave.
type Engine struct {
	table *Table
	wave  *wave.Wave

	height, width int
	periodic      bool

	// counters[cell*patternCount*NumDirections + pattern*NumDirections + d]
	counters []int32

	worklist []cellPattern
}

// NewEngine constructs a propagation engine over w using table, for a grid
// of the given dimensions and periodicity. Table and Wave dimensions/pattern
// counts must agree; this is an internal package invariant enforced by the
// front-ends, not re-validated here.
func NewEngine(table *Table, w *wave.Wave, height, width int, periodic bool) *Engine {
	n := height * width
	return &Engine{
		table:    table,
		wave:     w,
		height:   height,
		width:    width,
		periodic: periodic,
		counters: make([]int32, n*table.PatternCount*NumDirections),
	}
}

func (e *Engine) counterIndex(cell, pattern, d int) int {
	return (cell*e.table.PatternCount+pattern)*NumDirections + d
}

// Init computes the initial compatibility counters — for every cell,
// pattern p and direction d, counter[c][p][d] = |propagator[d][p]|, the
// number of patterns at the neighbor in direction d that permit p here
// (spec.md §4.5) — then unsets every pattern p at cell c that already has
// zero support in some in-range direction d (a counter of 0 with no removal
// behind it, which would otherwise never trigger the decrement-to-zero path
// in Propagate and let an unsupported pattern survive, violating spec.md §8
// invariant #2/#5). Finally, if outOfBounds is non-nil, preemptively unsets
// every pattern p at every cell c for which outOfBounds(c, p) reports the
// pattern's footprint would exit a non-periodic grid (spec.md §4.5
// "Boundary cells ... receive preemptive removals"). All of these removals
// seed the worklist; call Propagate afterward to drive them to a fixed
// point.
func (e *Engine) Init(outOfBounds func(cell, pattern int) bool) error {
	n := e.height * e.width
	for c := 0; c < n; c++ {
		for p := 0; p < e.table.PatternCount; p++ {
			for d := 0; d < NumDirections; d++ {
				e.counters[e.counterIndex(c, p, d)] = int32(len(e.table.Allowed(d, p)))
			}
		}
	}

	for c := 0; c < n; c++ {
		for p := 0; p < e.table.PatternCount; p++ {
			for d := 0; d < NumDirections; d++ {
				if _, ok := e.neighbor(c, d); !ok {
					continue
				}
				if e.counters[e.counterIndex(c, p, d)] == 0 {
					if err := e.Unset(c, p); err != nil {
						return err
					}
					break
				}
			}
		}
	}

	if outOfBounds == nil {
		return nil
	}
	for c := 0; c < n; c++ {
		for p := 0; p < e.table.PatternCount; p++ {
			if outOfBounds(c, p) {
				if err := e.Unset(c, p); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Unset removes pattern from cell's allowance, pushing it onto the worklist
// if this was a new removal. It returns ErrContradiction (via wave.Unset) if
// the removal drives the cell's count to zero.
func (e *Engine) Unset(cell, pattern int) error {
	removed, err := e.wave.Unset(cell, pattern)
	if removed {
		e.worklist = append(e.worklist, cellPattern{cell, pattern})
	}
	return err
}

func (e *Engine) neighbor(cell, d int) (neighborCell int, ok bool) {
	y, x := cell/e.width, cell%e.width
	dy, dx := Offset(d)
	ny, nx := y+dy, x+dx
	if e.periodic {
		ny = ((ny % e.height) + e.height) % e.height
		nx = ((nx % e.width) + e.width) % e.width
		return ny*e.width + nx, true
	}
	if ny < 0 || ny >= e.height || nx < 0 || nx >= e.width {
		return 0, false
	}
	return ny*e.width + nx, true
}

// Propagate drains the worklist, removing from each neighbor every pattern
// whose compatibility counter reaches zero, until no more removals are
// pending (spec.md §4.5). It returns ErrContradiction as soon as any cell's
// allowed-pattern count reaches zero.
func (e *Engine) Propagate() error {
	for len(e.worklist) > 0 {
		last := len(e.worklist) - 1
		cp := e.worklist[last]
		e.worklist = e.worklist[:last]

		for d := 0; d < NumDirections; d++ {
			neighborCell, ok := e.neighbor(cp.cell, d)
			if !ok {
				continue
			}
			for _, q := range e.table.Allowed(d, cp.pattern) {
				idx := e.counterIndex(neighborCell, q, Opposite(d))
				e.counters[idx]--
				if e.counters[idx] == 0 {
					if err := e.Unset(neighborCell, q); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
