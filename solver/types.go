package solver

import (
	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/layout"
	"github.com/patioboard/tilecover/score"
	"github.com/patioboard/tilecover/search"
	"github.com/patioboard/tilecover/shape"
)

// BalanceConfig selects between first-only and balanced dispatch. When
// NoBalance is true every other field is ignored.
type BalanceConfig struct {
	NoBalance              bool
	Weights                score.Weights
	DesiredMix             map[string]float64
	MaxSolutionsToEvaluate int
}

// Problem is the decoded, validated input to Solve: a board, a tile
// catalog, and the dispatch configuration.
type Problem struct {
	W, H                  int
	Holes                 []board.Cell
	TileTypes             []shape.TileType
	UniqueByBoardSymmetry bool
	Balance               BalanceConfig

	// Cap is the fallback solution cap used when Balance.NoBalance is
	// false and Balance.MaxSolutionsToEvaluate is zero.
	Cap int
}

// Kind names which of the two terminal message shapes an Outcome
// carries, matching the "result" / "infeasible" message types.
type Kind string

const (
	KindInfeasible Kind = "infeasible"
	KindResult     Kind = "result"
)

// Outcome is Solve's terminal result, prior to wire encoding. Reasons
// is populated only for KindInfeasible; Layout and Score only for
// KindResult. Stats is never part of the wire protocol — it exists for
// test introspection and benchmarking only.
type Outcome struct {
	Kind    Kind
	Reasons []string

	Found  bool
	Layout layout.Layout
	Score  *float64

	Stats search.Stats
}
