package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/shape"
	"github.com/patioboard/tilecover/solver"
)

func dominoType() shape.TileType {
	return shape.TileType{
		Index:       0,
		Name:        "domino",
		Base:        []shape.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}},
		AllowRotate: true,
	}
}

func TestSolve_FirstOnly_2x2Domino(t *testing.T) {
	p := solver.Problem{
		W: 2, H: 2,
		TileTypes: []shape.TileType{dominoType()},
		Balance:   solver.BalanceConfig{NoBalance: true},
	}

	out, err := solver.Solve(p, solver.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, solver.KindResult, out.Kind)
	assert.True(t, out.Found)
	assert.Nil(t, out.Score)
	assert.Len(t, out.Layout, 2)
}

func TestSolve_Infeasible_OddArea(t *testing.T) {
	p := solver.Problem{
		W: 3, H: 3,
		TileTypes: []shape.TileType{dominoType()},
		Balance:   solver.BalanceConfig{NoBalance: true},
	}

	out, err := solver.Solve(p, solver.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, solver.KindInfeasible, out.Kind)
	assert.NotEmpty(t, out.Reasons)
}

func TestSolve_Infeasible_CheckerboardHoles(t *testing.T) {
	p := solver.Problem{
		W: 8, H: 8,
		Holes:     []board.Cell{{X: 0, Y: 0}, {X: 7, Y: 7}},
		TileTypes: []shape.TileType{dominoType()},
		Balance:   solver.BalanceConfig{NoBalance: true},
	}

	out, err := solver.Solve(p, solver.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, solver.KindInfeasible, out.Kind)
}

func TestSolve_Balanced_PicksLowestScore(t *testing.T) {
	p := solver.Problem{
		W: 2, H: 2,
		TileTypes:             []shape.TileType{dominoType()},
		UniqueByBoardSymmetry: true,
		Balance: solver.BalanceConfig{
			MaxSolutionsToEvaluate: 10,
		},
	}

	out, err := solver.Solve(p, solver.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, solver.KindResult, out.Kind)
	require.NotNil(t, out.Score)
	// Under full D4 symmetry a 2x2 board tiled by dominoes has exactly
	// one distinct canonical layout, so the dedup cap can never be hit.
	assert.Len(t, out.Layout, 2)
}

func TestSolve_NoTileTypes(t *testing.T) {
	p := solver.Problem{W: 2, H: 2}
	_, err := solver.Solve(p)
	assert.ErrorIs(t, err, solver.ErrNoTileTypes)
}

func TestSolve_MalformedBoard(t *testing.T) {
	p := solver.Problem{
		W: 0, H: 2,
		TileTypes: []shape.TileType{dominoType()},
	}
	_, err := solver.Solve(p)
	assert.Error(t, err)
}

func TestEncodeResult_RoundTripsLayout(t *testing.T) {
	p := solver.Problem{
		W: 2, H: 2,
		TileTypes: []shape.TileType{dominoType()},
		Balance:   solver.BalanceConfig{NoBalance: true},
	}
	out, err := solver.Solve(p, solver.WithSeed(1))
	require.NoError(t, err)

	data, err := solver.EncodeResult(out, p.W)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"result"`)
}

func TestEncodeResult_Infeasible(t *testing.T) {
	out := solver.Outcome{Kind: solver.KindInfeasible, Reasons: []string{"odd area"}}
	data, err := solver.EncodeResult(out, 0)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"odd area"`)
}
