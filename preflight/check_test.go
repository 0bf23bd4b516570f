package preflight_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/preflight"
	"github.com/patioboard/tilecover/shape"
)

func domino(allowRotate bool) shape.TileType {
	return shape.TileType{
		Index:       0,
		Name:        "domino",
		Base:        []shape.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}},
		AllowRotate: allowRotate,
	}
}

// Scenario 2: 3x3, no holes, only dominoes unbounded -> odd-count parity failure.
// N=9 also fails the gcd test (9 mod 2 != 0) and the checkerboard test
// (imbalance 1), so three reasons fire, parity first.
func TestCheck_OddCountParity(t *testing.T) {
	b, err := board.NewBoard(3, 3, nil)
	require.NoError(t, err)
	res := preflight.Check(b, []shape.TileType{domino(true)})
	require.False(t, res.OK)
	require.Len(t, res.Reasons, 3)
	assert.Contains(t, res.Reasons[0], "odd number of unit cells")
}

// Scenario 3: 8x8 with opposite-corner holes, only dominoes -> checkerboard failure.
func TestCheck_CheckerboardImbalance(t *testing.T) {
	b, err := board.NewBoard(8, 8, []board.Cell{{X: 0, Y: 0}, {X: 7, Y: 7}})
	require.NoError(t, err)
	res := preflight.Check(b, []shape.TileType{domino(true)})
	require.False(t, res.OK)
	assert.Contains(t, res.Reasons[0], "checkerboard")
}

// Scenario 6: 3x1 board, dominoes only, unbounded -> gcd failure (N=3, gcd=2).
func TestCheck_GCDFailure(t *testing.T) {
	b, err := board.NewBoard(3, 1, nil)
	require.NoError(t, err)
	res := preflight.Check(b, []shape.TileType{domino(true)})
	require.False(t, res.OK)
	found := false
	for _, r := range res.Reasons {
		if strings.Contains(r, "not divisible by the gcd") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheck_NoTilesAvailable(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	zero := 0
	tt := domino(true)
	tt.Count = &zero
	res := preflight.Check(b, []shape.TileType{tt})
	require.False(t, res.OK)
	assert.Contains(t, res.Reasons[0], "no tiles are available")
}

func TestCheck_TotalAreaInsufficient(t *testing.T) {
	b, err := board.NewBoard(4, 4, nil)
	require.NoError(t, err)
	count := 2
	tt := domino(true)
	tt.Count = &count
	res := preflight.Check(b, []shape.TileType{tt})
	require.False(t, res.OK)
	assertAny(t, res.Reasons, "maximum coverable area")
}

func TestCheck_Passes(t *testing.T) {
	b, err := board.NewBoard(2, 2, nil)
	require.NoError(t, err)
	res := preflight.Check(b, []shape.TileType{domino(true)})
	assert.True(t, res.OK)
	assert.Empty(t, res.Reasons)
}

func assertAny(t *testing.T, reasons []string, substr string) {
	t.Helper()
	for _, r := range reasons {
		if strings.Contains(r, substr) {
			return
		}
	}
	t.Fatalf("no reason contained %q: %v", substr, reasons)
}
