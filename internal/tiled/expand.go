package tiled

import (
	"github.com/rybkr/wfc/internal/color"
	"github.com/rybkr/wfc/internal/grid"
	"github.com/rybkr/wfc/internal/propagator"
	"github.com/rybkr/wfc/internal/symmetry"
)

// tileOrient names one (tile name, dihedral orientation) pair.
type tileOrient struct {
	name string
	g    int
}

// expansion holds the oriented-tile pattern list, their weights, and the
// lookup from (tile name, orientation) to pattern index needed by rule
// expansion.
type expansion struct {
	images      []*grid.Grid[color.Color]
	weights     []float64
	orientIndex map[tileOrient]int
}

// expandTiles implements spec.md §4.8 item 1: each tile expands into
// |orbit(Class)| distinct oriented images, each weighted
// Weight/|orbit(Class)|. Orientations are generated by applying all 8
// dihedral elements and canonicalizing by pixel-array equality within each
// tile, which reproduces the orbit cardinality (X→1, I/\→2, T/L→4, P→8)
// without needing a separate stabilizer-subgroup table.
func expandTiles(tiles []Tile) *expansion {
	ex := &expansion{orientIndex: map[tileOrient]int{}}

	for _, t := range tiles {
		local := map[string]int{}
		for g := 0; g < 8; g++ {
			img := transformImage(t.Pixels, g)
			key := imageKey(img)
			idx, ok := local[key]
			if !ok {
				idx = len(ex.images)
				local[key] = idx
				ex.images = append(ex.images, img)
				ex.weights = append(ex.weights, 0)
			}
			ex.weights[idx] += t.Weight / 8
			ex.orientIndex[tileOrient{t.Name, g}] = idx
		}
	}
	return ex
}

// buildTable implements spec.md §4.3 "Tiled mode" and §4.8 item 2: each base
// rule is closed under the dihedral group, and rules referencing a tile name
// absent from tiles are silently dropped (spec.md §6, scenario S5).
//
// If no rule survives the drop (scenario S5's "if dropping leaves no rules"
// case, and scenario S1's no-rules-at-all case), the table falls back to
// fully permissive: every pattern compatible with every pattern in every
// direction. An empty rule list building an empty table would otherwise mean
// every pattern has zero support everywhere once internal/propagator's
// engine correctly removes zero-support patterns at Init, turning "no
// adjacency constraints given" into "no adjacency is ever possible" and
// contradicting on the very first cell, the opposite of what an absent
// constraint should mean.
func buildTable(tiles []Tile, rules []NeighborRule, ex *expansion) *propagator.Table {
	known := make(map[string]bool, len(tiles))
	for _, t := range tiles {
		known[t.Name] = true
	}

	valid := make([]NeighborRule, 0, len(rules))
	for _, rule := range rules {
		if known[rule.LeftName] && known[rule.RightName] {
			valid = append(valid, rule)
		}
	}

	table := propagator.NewTable(len(ex.images))
	if len(valid) == 0 {
		for d := 0; d < propagator.NumDirections; d++ {
			for p := 0; p < len(ex.images); p++ {
				for q := 0; q < len(ex.images); q++ {
					table.Add(d, p, q)
				}
			}
		}
		table.Finalize()
		return table
	}

	for _, rule := range valid {
		for g := 0; g < 8; g++ {
			leftOrient := symmetry.Compose(rule.LeftOrientation, g)
			rightOrient := symmetry.Compose(rule.RightOrientation, g)
			dir := symmetry.RotateDirection(baseRuleDirection, g)

			leftIdx := ex.orientIndex[tileOrient{rule.LeftName, leftOrient}]
			rightIdx := ex.orientIndex[tileOrient{rule.RightName, rightOrient}]
			table.AddSymmetric(dir, leftIdx, rightIdx)
		}
	}
	table.Finalize()
	return table
}
