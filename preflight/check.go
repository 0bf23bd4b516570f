package preflight

import (
	"fmt"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/shape"
)

// Check runs every pre-flight test against b and types, in the order
// the order below, and accumulates one reason per failing
// test. OK is true iff no test failed.
//
// Complexity: O(|types|) for the stock/area/parity/gcd tests,
// O(N + Σ|base|) for the checkerboard test (it colors each available
// type's base shape once; no orientations are enumerated).
func Check(b *board.Board, types []shape.TileType) Result {
	var reasons []string

	available := availableTypes(types)
	if len(available) == 0 {
		reasons = append(reasons, "no tiles are available: every tile type has a stock count of zero")
		// Every subsequent test is moot with zero stock; report just this one.
		return fail(reasons...)
	}

	n := b.N()

	if r, ok := checkTotalArea(available, n); !ok {
		reasons = append(reasons, r)
	}
	if r, ok := checkCountParity(available, n); !ok {
		reasons = append(reasons, r)
	}
	if r, ok := checkGCD(available, n); !ok {
		reasons = append(reasons, r)
	}
	if r, ok := checkCheckerboard(available, b); !ok {
		reasons = append(reasons, r)
	}

	if len(reasons) == 0 {
		return pass()
	}
	return fail(reasons...)
}

func availableTypes(types []shape.TileType) []shape.TileType {
	out := make([]shape.TileType, 0, len(types))
	for _, t := range types {
		if t.Available() {
			out = append(out, t)
		}
	}
	return out
}

// checkTotalArea enforces that, when every available type has a finite
// stock limit, the maximum coverable area is at least N.
func checkTotalArea(types []shape.TileType, n int) (string, bool) {
	maxArea := 0
	for _, t := range types {
		if t.Count == nil {
			// Unbounded stock makes the area test vacuous.
			return "", true
		}
		maxArea += *t.Count * t.Area()
	}
	if maxArea < n {
		return fmt.Sprintf("maximum coverable area %d is less than the %d free cells to cover", maxArea, n), false
	}
	return "", true
}

// checkCountParity enforces that an odd free-cell count cannot be
// covered if every available tile covers an even number of cells.
func checkCountParity(types []shape.TileType, n int) (string, bool) {
	if n%2 == 0 {
		return "", true
	}
	for _, t := range types {
		if t.Area()%2 != 0 {
			return "", true
		}
	}
	return "odd number of unit cells to cover, but all available tiles cover an even number of cells", false
}

// checkGCD enforces that N is divisible by the gcd of all available
// tile areas.
func checkGCD(types []shape.TileType, n int) (string, bool) {
	areas := make([]int, len(types))
	for i, t := range types {
		areas[i] = t.Area()
	}
	g := gcdAll(areas)
	if g == 0 || n%g == 0 {
		return "", true
	}
	return fmt.Sprintf("%d free cells is not divisible by the gcd of available tile areas (%d)", n, g), false
}

// checkCheckerboard enforces that, if every available tile is
// parity-neutral (splits evenly across the two checkerboard colors
// under any orientation — a rectangle is parity-neutral iff at least
// one side is even, which this per-cell computation subsumes), the
// free board itself must have a zero color imbalance.
func checkCheckerboard(types []shape.TileType, b *board.Board) (string, bool) {
	for _, t := range types {
		if tileColorDiff(t) != 0 {
			// At least one available tile can absorb any imbalance.
			return "", true
		}
	}
	imbalance := b.ColorImbalance()
	if imbalance == 0 {
		return "", true
	}
	return fmt.Sprintf("checkerboard color imbalance of %d cannot be absorbed: every available tile is parity-neutral", abs(imbalance)), false
}

// tileColorDiff computes (#even-parity cells - #odd-parity cells) of a
// tile's base shape. Rotation and reflection preserve (x+y) mod 2 for
// every cell (both map parity to itself modulo 2), so this value is
// the same for every orientation and is translation-invariant in
// magnitude; the base shape alone is sufficient to evaluate it.
func tileColorDiff(t shape.TileType) int {
	diff := 0
	for _, c := range t.Base {
		if (c.X+c.Y)%2 == 0 {
			diff++
		} else {
			diff--
		}
	}
	return diff
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
