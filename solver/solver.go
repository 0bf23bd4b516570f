package solver

import (
	"fmt"
	"time"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/canon"
	"github.com/patioboard/tilecover/layout"
	"github.com/patioboard/tilecover/placement"
	"github.com/patioboard/tilecover/preflight"
	"github.com/patioboard/tilecover/score"
	"github.com/patioboard/tilecover/search"
	"github.com/patioboard/tilecover/shape"
	"github.com/patioboard/tilecover/symmetry"
)

const genericSearchFailureReason = "no exact layout found"

// Solve runs one request to completion: board construction, pre-flight,
// exact-cover search (first-only or balanced dispatch), and — in
// balanced mode — scoring and selection. It never retains state across
// calls: every solve call is independent.
//
// The returned error is reserved for the "internal failure" class:
// malformed input (bad dimensions, an empty tile base, a hole outside
// the board) or a placement-enumeration invariant violation. Ordinary
// infeasibility is reported via Outcome, not error.
func Solve(p Problem, opts ...Option) (Outcome, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
	}

	if len(p.TileTypes) == 0 {
		return Outcome{}, ErrNoTileTypes
	}
	for _, tt := range p.TileTypes {
		if err := tt.Validate(); err != nil {
			return Outcome{}, fmt.Errorf("solver: invalid tile type %q: %w", tt.Name, err)
		}
	}

	b, err := board.NewBoard(p.W, p.H, p.Holes)
	if err != nil {
		return Outcome{}, fmt.Errorf("solver: %w", err)
	}

	preflightResult := preflight.Check(b, p.TileTypes)
	logDebug(cfg, "preflight", map[string]any{"ok": preflightResult.OK, "reqID": cfg.reqID.String()})
	if !preflightResult.OK {
		return Outcome{Kind: KindInfeasible, Reasons: preflightResult.Reasons}, nil
	}

	tbl, err := placement.Enumerate(b, p.TileTypes)
	if err != nil {
		return Outcome{}, fmt.Errorf("solver: %w", err)
	}

	group := symmetry.Group{W: b.W, H: b.H, Transforms: []symmetry.Transform{{Kind: symmetry.Identity}}}
	if p.UniqueByBoardSymmetry {
		group = symmetry.Build(b)
	}

	searchOpts := []search.Option{search.WithSeed(cfg.seed)}
	if cfg.progress != nil {
		searchOpts = append(searchOpts, search.WithProgress(cfg.progress))
	}
	if cfg.cancel != nil {
		searchOpts = append(searchOpts, search.WithCancel(cfg.cancel))
	}

	engine := search.New(b.N(), p.TileTypes, tbl, searchOpts...)
	logDebug(cfg, "search start", map[string]any{"reqID": cfg.reqID.String(), "noBalance": p.Balance.NoBalance})

	var outcome Outcome
	if p.Balance.NoBalance {
		outcome = solveFirstOnly(engine)
	} else {
		names := namesByIndex(p.TileTypes)
		outcome = solveBalanced(engine, b, names, group, p.Balance, p.Cap)
	}
	logDebug(cfg, "search stop", map[string]any{"reqID": cfg.reqID.String(), "kind": string(outcome.Kind), "nodes": outcome.Stats.Nodes})

	return outcome, nil
}

func solveFirstOnly(engine *search.Engine) Outcome {
	l, ok := engine.FindFirst()
	if !ok {
		return Outcome{Kind: KindInfeasible, Reasons: []string{genericSearchFailureReason}, Stats: engine.Stats()}
	}
	return Outcome{Kind: KindResult, Found: true, Layout: l, Stats: engine.Stats()}
}

func solveBalanced(engine *search.Engine, b *board.Board, names []string, group symmetry.Group, cfg BalanceConfig, fallbackCap int) Outcome {
	maxSolutions := cfg.MaxSolutionsToEvaluate
	if maxSolutions <= 0 {
		maxSolutions = fallbackCap
	}
	if maxSolutions <= 0 {
		maxSolutions = 1
	}

	dedup := canon.NewSet()
	scoreCfg := score.Config{Weights: cfg.Weights, DesiredMix: cfg.DesiredMix}

	found := false
	var best layout.Layout
	var bestScore float64

	engine.Enumerate(func(l search.Layout) bool {
		form := canon.Form(l, group)
		if !dedup.Add(form) {
			return false
		}
		res := score.Score(l, names, b, scoreCfg)
		if !found || res.Score < bestScore {
			found = true
			bestScore = res.Score
			best = l.Clone()
		}
		return dedup.Len() >= maxSolutions
	})

	if !found {
		return Outcome{Kind: KindInfeasible, Reasons: []string{genericSearchFailureReason}, Stats: engine.Stats()}
	}
	s := bestScore
	return Outcome{Kind: KindResult, Found: true, Layout: best, Score: &s, Stats: engine.Stats()}
}

func namesByIndex(types []shape.TileType) []string {
	maxIndex := 0
	for _, t := range types {
		if t.Index > maxIndex {
			maxIndex = t.Index
		}
	}
	names := make([]string, maxIndex+1)
	for _, t := range types {
		names[t.Index] = t.Name
	}
	return names
}

func logDebug(cfg config, msg string, fields map[string]any) {
	if cfg.logger == nil {
		return
	}
	ev := cfg.logger.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
