package score

import (
	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/layout"
)

const varianceEpsilon = 1e-9

// Score computes the balance score for a completed layout. names must
// be indexed by tile-type index (names[p.TileIndex] is that
// placement's mix-accounting name). l is read-only; Score never
// mutates it or the board.
func Score(l layout.Layout, names []string, b *board.Board, cfg Config) Result {
	counts := countsByName(l, names)
	mixErr := mixError(counts, len(l), cfg.DesiredMix)
	orientErr := orientationError(l, b.W)
	grid := l.Grid(b.W, b.H)
	seam := seamPenalty(grid)
	cross := crossJoints(grid)

	return Result{
		Score: cfg.Weights.Mix*mixErr + cfg.Weights.Orient*orientErr +
			cfg.Weights.Seam*seam + cfg.Weights.Cross*cross,
		MixErr:      mixErr,
		OrientErr:   orientErr,
		SeamPenalty: seam,
		CrossJoints: cross,
	}
}

func countsByName(l layout.Layout, names []string) map[string]int {
	counts := make(map[string]int)
	for _, p := range l {
		counts[names[p.TileIndex]]++
	}
	return counts
}

// mixError is the coefficient-of-variation squared across per-name
// counts when no target mix is given, or the squared L2 distance
// between normalized actual and target proportions when one is.
func mixError(counts map[string]int, total int, desired map[string]float64) float64 {
	if desired == nil {
		return mixVariance(counts)
	}
	return mixDistance(counts, total, desired)
}

func mixVariance(counts map[string]int) float64 {
	n := len(counts)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		sum += float64(c)
	}
	mean := sum / float64(n)

	sq := 0.0
	for _, c := range counts {
		d := float64(c) - mean
		sq += d * d
	}
	variance := sq / float64(n)

	return variance / (mean*mean + varianceEpsilon)
}

func mixDistance(counts map[string]int, total int, desired map[string]float64) float64 {
	if total == 0 {
		return 0
	}
	targetSum := 0.0
	for _, w := range desired {
		targetSum += w
	}

	names := make(map[string]struct{}, len(counts)+len(desired))
	for name := range counts {
		names[name] = struct{}{}
	}
	for name := range desired {
		names[name] = struct{}{}
	}

	dist := 0.0
	for name := range names {
		actual := float64(counts[name]) / float64(total)
		var target float64
		if targetSum > 0 {
			target = desired[name] / targetSum
		}
		d := actual - target
		dist += d * d
	}
	return dist
}

func orientationError(l layout.Layout, w int) float64 {
	horiz, vert := 0, 0
	for _, p := range l {
		minX, minY, maxX, maxY := boundingBox(p.CellKeys, w)
		bw, bh := maxX-minX+1, maxY-minY+1
		switch {
		case bw > bh:
			horiz++
		case bh > bw:
			vert++
		}
	}
	if horiz+vert == 0 {
		return 0
	}
	diff := horiz - vert
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(horiz+vert)
}

func boundingBox(cellKeys []int, w int) (minX, minY, maxX, maxY int) {
	x0, y0 := board.Coordinate(cellKeys[0], w)
	minX, maxX, minY, maxY = x0, x0, y0, y0
	for _, key := range cellKeys[1:] {
		x, y := board.Coordinate(key, w)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return
}

// seamPenalty scans every row and every column of grid for runs of
// consecutive boundaries between different placements (a "chopped
// grout line" look), adding 0.2*run for every run longer than one. A
// hole cell (-1) breaks a run rather than extending it — a hole is not
// itself a seam between two placements.
func seamPenalty(grid [][]int) float64 {
	if len(grid) == 0 {
		return 0
	}
	h := len(grid)
	w := len(grid[0])

	total := 0.0
	for y := 0; y < h; y++ {
		total += scanSeamRuns(func(i int) (int, int) { return grid[y][i], grid[y][i+1] }, w-1)
	}
	for x := 0; x < w; x++ {
		total += scanSeamRuns(func(i int) (int, int) { return grid[i][x], grid[i+1][x] }, h-1)
	}
	return total
}

func scanSeamRuns(pairAt func(i int) (a, b int), n int) float64 {
	total := 0.0
	run := 0
	flush := func() {
		if run > 1 {
			total += 0.2 * float64(run)
		}
		run = 0
	}
	for i := 0; i < n; i++ {
		a, b := pairAt(i)
		if a == -1 || b == -1 {
			flush()
			continue
		}
		if a != b {
			run++
		} else {
			flush()
		}
	}
	flush()
	return total
}

// crossJoints counts every 2x2 window whose four cells belong to three
// or more distinct placements, multiplied by 0.1. A hole (-1) is not a
// placement and does not contribute to the distinctness count.
func crossJoints(grid [][]int) float64 {
	if len(grid) < 2 || len(grid[0]) < 2 {
		return 0
	}
	h, w := len(grid), len(grid[0])
	count := 0
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			seen := make(map[int]struct{}, 4)
			for _, v := range [4]int{grid[y][x], grid[y][x+1], grid[y+1][x], grid[y+1][x+1]} {
				if v == -1 {
					continue
				}
				seen[v] = struct{}{}
			}
			if len(seen) >= 3 {
				count++
			}
		}
	}
	return 0.1 * float64(count)
}
