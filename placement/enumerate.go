package placement

import (
	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/shape"
)

// Enumerate computes every placement of every tile type's orientations
// on b. For each (tile type, orientation) pair, every offset whose
// bounding box fits within the board is tried; the placement is kept
// iff every covered cell lies in the free set.
//
// Complexity: O(sum over (ti,orientation) of (W-mx)·(H-my)) offsets
// tried, each an O(area) membership check; typically O(W·H·|types|)
// under typical inputs.
func Enumerate(b *board.Board, types []shape.TileType) (*Table, error) {
	if b == nil {
		return nil, ErrNilBoard
	}

	tbl := &Table{ByColumn: make([][]int, b.N())}

	for _, tt := range types {
		if !tt.Available() {
			continue
		}
		orients := shape.Orientations(tt.Base, tt.AllowRotate, tt.AllowReflect)
		for _, o := range orients {
			maxOX := b.W - o.Width()
			maxOY := b.H - o.Height()
			for oy := 0; oy <= maxOY; oy++ {
				for ox := 0; ox <= maxOX; ox++ {
					cols := make([]int, 0, len(o.Cells))
					keys := make([]int, 0, len(o.Cells))
					ok := true
					for _, c := range o.Cells {
						x, y := ox+c.X, oy+c.Y
						key := board.Key(x, y, b.W)
						col, inFree := b.ColumnOf(key)
						if !inFree {
							ok = false
							break
						}
						cols = append(cols, col)
						keys = append(keys, key)
					}
					if !ok {
						continue
					}
					pid := len(tbl.Placements)
					tbl.Placements = append(tbl.Placements, Placement{
						PID:       pid,
						TileIndex: tt.Index,
						Columns:   cols,
						CellKeys:  keys,
					})
					for _, col := range cols {
						tbl.ByColumn[col] = append(tbl.ByColumn[col], pid)
					}
				}
			}
		}
	}

	return tbl, nil
}
