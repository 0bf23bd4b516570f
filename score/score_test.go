package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/layout"
	"github.com/patioboard/tilecover/placement"
	"github.com/patioboard/tilecover/score"
)

// twoHorizontalDominoes tiles a 2x2 board with two horizontal
// dominoes: fully imbalanced orientation (all horizontal, so
// horiz=2, vert=0 -> orientErr=1), single tile name (mixErr=0 under
// plain variance since there's only one distinct name), and a single
// horizontal seam between the rows (run length 1, below the >1
// threshold, so no seam penalty).
func twoHorizontalDominoes() layout.Layout {
	return layout.Layout{
		placement.Placement{PID: 0, TileIndex: 0, CellKeys: []int{0, 1}},
		placement.Placement{PID: 1, TileIndex: 0, CellKeys: []int{2, 3}},
	}
}

func TestScore_SingleNameNoDesiredMix(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	names := []string{"domino"}

	r := score.Score(twoHorizontalDominoes(), names, b, score.Config{
		Weights: score.Weights{Mix: 1, Orient: 1, Seam: 1, Cross: 1},
	})

	assert.Equal(t, 0.0, r.MixErr, "a single tile name has zero count variance")
	assert.Equal(t, 1.0, r.OrientErr, "all-horizontal layout is maximally imbalanced")
}

func TestScore_DesiredMixDistance(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	names := []string{"domino"}

	r := score.Score(twoHorizontalDominoes(), names, b, score.Config{
		Weights:    score.Weights{Mix: 1},
		DesiredMix: map[string]float64{"domino": 1},
	})

	// Actual proportion of "domino" is 1.0 (the only name present),
	// matching the only target, so distance is zero.
	assert.InDelta(t, 0.0, r.MixErr, 1e-9)
}

func TestScore_CrossJoints_FourDistinctPlacements(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	names := []string{"unit"}

	// Four 1x1 placements, one per cell: the single 2x2 window sees
	// four distinct placement indices.
	l := layout.Layout{
		placement.Placement{PID: 0, TileIndex: 0, CellKeys: []int{0}},
		placement.Placement{PID: 1, TileIndex: 0, CellKeys: []int{1}},
		placement.Placement{PID: 2, TileIndex: 0, CellKeys: []int{2}},
		placement.Placement{PID: 3, TileIndex: 0, CellKeys: []int{3}},
	}

	r := score.Score(l, names, b, score.Config{Weights: score.Weights{Cross: 1}})
	assert.InDelta(t, 0.1, r.CrossJoints, 1e-9)
}

func TestScore_CrossJoints_HoleIsNotAPlacement(t *testing.T) {
	b, err := board.NewBoard(2, 2, []board.Cell{{X: 1, Y: 1}})
	require.NoError(t, err)
	names := []string{"unit"}

	// Free cells are keys 0 ("(0,0)"), 1 ("(1,0)"), 2 ("(0,1)"); key 3
	// ("(1,1)") is a hole. One domino covers the top row, one single
	// tile covers the remaining free cell: the board's only 2x2 window
	// sees two distinct placements plus a hole, not three distinct
	// placements, so it must not count as a cross joint.
	l := layout.Layout{
		placement.Placement{PID: 0, TileIndex: 0, CellKeys: []int{0, 1}},
		placement.Placement{PID: 1, TileIndex: 0, CellKeys: []int{2}},
	}

	r := score.Score(l, names, b, score.Config{Weights: score.Weights{Cross: 1}})
	assert.Equal(t, 0.0, r.CrossJoints)
}

func TestScore_SeamPenalty_LongRun(t *testing.T) {
	b, err := board.NewBoard(4, 1, nil)
	require.NoError(t, err)
	names := []string{"unit"}

	// Four 1x1 placements side by side in one row: three consecutive
	// seams (boundaries between distinct placements), run length 3.
	l := layout.Layout{
		placement.Placement{PID: 0, TileIndex: 0, CellKeys: []int{0}},
		placement.Placement{PID: 1, TileIndex: 0, CellKeys: []int{1}},
		placement.Placement{PID: 2, TileIndex: 0, CellKeys: []int{2}},
		placement.Placement{PID: 3, TileIndex: 0, CellKeys: []int{3}},
	}

	r := score.Score(l, names, b, score.Config{Weights: score.Weights{Seam: 1}})
	assert.InDelta(t, 0.6, r.SeamPenalty, 1e-9)
}

func TestScore_DoesNotMutateInput(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	names := []string{"domino"}
	l := twoHorizontalDominoes()
	before := make(layout.Layout, len(l))
	copy(before, l)

	_ = score.Score(l, names, b, score.Config{Weights: score.Weights{Mix: 1, Orient: 1, Seam: 1, Cross: 1}})

	assert.Equal(t, before, l)
}
