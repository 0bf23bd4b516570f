package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/placement"
	"github.com/patioboard/tilecover/shape"
)

func domino() shape.TileType {
	return shape.TileType{
		Index:       0,
		Name:        "domino",
		Base:        []shape.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}},
		AllowRotate: true,
	}
}

func TestEnumerate_2x2Domino(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	tbl, err := placement.Enumerate(b, []shape.TileType{domino()})
	require.NoError(t, err)

	// Horizontal: (0,0)-(1,0), (0,1)-(1,1). Vertical: (0,0)-(0,1), (1,0)-(1,1).
	assert.Len(t, tbl.Placements, 4)
	for c := 0; c < b.N(); c++ {
		assert.Len(t, tbl.ByColumn[c], 2)
	}
}

func TestEnumerate_RespectsHoles(t *testing.T) {
	b, err := board.NewBoard(3, 1, []board.Cell{{X: 1, Y: 0}})
	require.NoError(t, err)
	tbl, err := placement.Enumerate(b, []shape.TileType{domino()})
	require.NoError(t, err)
	assert.Empty(t, tbl.Placements)
}

func TestEnumerate_SkipsUnavailableType(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	zero := 0
	tt := domino()
	tt.Count = &zero
	tbl, err := placement.Enumerate(b, []shape.TileType{tt})
	require.NoError(t, err)
	assert.Empty(t, tbl.Placements)
}

func TestEnumerate_NilBoard(t *testing.T) {
	_, err := placement.Enumerate(nil, nil)
	assert.ErrorIs(t, err, placement.ErrNilBoard)
}
