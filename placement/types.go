package placement

// Placement is one concrete positioning of one tile orientation on the
// board: a row in the exact-cover matrix.
type Placement struct {
	// PID is this placement's stable index into Table.Placements.
	PID int

	// TileIndex is the originating tile type's catalog index.
	TileIndex int

	// Columns lists the free-cell matrix columns this placement
	// covers, sorted ascending.
	Columns []int

	// CellKeys lists the absolute board cell keys this placement
	// covers, in the same order as Columns.
	CellKeys []int
}

// Table holds every enumerated placement plus the reverse index from
// matrix column to the placements covering it.
type Table struct {
	Placements []Placement

	// ByColumn[c] lists the pids of placements covering free-cell
	// column c.
	ByColumn [][]int
}

// PlacementsForType returns every placement pid whose TileIndex
// matches ti, in pid order.
func (t *Table) PlacementsForType(ti int) []int {
	out := make([]int, 0)
	for _, p := range t.Placements {
		if p.TileIndex == ti {
			out = append(out, p.PID)
		}
	}
	return out
}
