package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/canon"
	"github.com/patioboard/tilecover/layout"
	"github.com/patioboard/tilecover/placement"
	"github.com/patioboard/tilecover/symmetry"
)

// Two horizontal dominoes stacked on a 2x2 board. The layout maps to
// itself under FlipH, FlipV and the 180-degree rotation, and to the
// vertical pair of dominoes under the 90/270-degree rotations and the
// diagonal flips.
func horizontalPairLayout() layout.Layout {
	return layout.Layout{
		placement.Placement{PID: 0, TileIndex: 0, CellKeys: []int{0, 1}},
		placement.Placement{PID: 1, TileIndex: 0, CellKeys: []int{2, 3}},
	}
}

func TestForm_Deterministic(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	g := symmetry.Build(b)

	l := horizontalPairLayout()
	f1 := canon.Form(l, g)
	f2 := canon.Form(l, g)
	assert.Equal(t, f1, f2)
}

func TestForm_SymmetricLayoutsCollapse(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	g := symmetry.Build(b)

	horizontal := horizontalPairLayout()
	vertical := layout.Layout{
		placement.Placement{PID: 0, TileIndex: 0, CellKeys: []int{0, 2}},
		placement.Placement{PID: 1, TileIndex: 0, CellKeys: []int{1, 3}},
	}

	set := canon.NewSet()
	assert.True(t, set.Add(canon.Form(horizontal, g)))
	// Under the board's full D4 group, the vertical pair is reachable
	// from the horizontal pair by a 90-degree rotation, so it must
	// canonicalize to the same form.
	assert.False(t, set.Add(canon.Form(vertical, g)))
}

func TestSet_DedupBasic(t *testing.T) {
	s := canon.NewSet()
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.Equal(t, 2, s.Len())
}
