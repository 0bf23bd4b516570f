package layout

import (
	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/placement"
)

// Layout is an ordered list of placements whose cells partition a
// board's free set.
type Layout []placement.Placement

// Clone returns a new placement list holding copies of l's
// placements. Each placement's Columns and CellKeys slices are shared
// with l, not copied.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Grid renders the layout as an H×W array of layout indices (the
// placement's position within l), with -1 for any cell the layout
// does not cover (holes, for a complete layout).
func (l Layout) Grid(w, h int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = -1
		}
	}
	for idx, p := range l {
		for _, key := range p.CellKeys {
			x, y := board.Coordinate(key, w)
			grid[y][x] = idx
		}
	}
	return grid
}
