package search

import (
	"math"
	"math/rand"

	"github.com/patioboard/tilecover/internal/rng"
	"github.com/patioboard/tilecover/placement"
	"github.com/patioboard/tilecover/shape"
)

const unboundedLimit = math.MaxInt32

// Engine runs exact-cover search over one placement table. It is built
// once per problem and is not safe for concurrent use — callers wanting
// parallel search run independent Engines over independent copies of
// the table, the way bbEngine is never shared across goroutines either.
type Engine struct {
	n          int // number of columns (free cells)
	placements []placement.Placement
	byColumn   [][]int

	limit     []int // per tile-type index, unboundedLimit if unlimited
	usedCount []int // per tile-type index

	coveredCol   []bool
	taken        []bool // per placement id: chosen or banned
	bannedTrail  []int  // shared scratch stack of banned row ids
	coveredCount int

	solutionRows []int

	rng      *rand.Rand
	progress ProgressFunc
	cancelFn CancelFunc
	canceled bool

	stats Stats
}

// New builds an Engine for a board of n free cells, a placement table
// enumerated over it, and the tile catalog the table was built from
// (needed for per-type stock limits).
func New(n int, types []shape.TileType, tbl *placement.Table, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	limit := make([]int, len(types))
	for _, t := range types {
		lim := unboundedLimit
		if t.Count != nil {
			lim = *t.Count
		}
		// A stock limit above the number of placements actually on the
		// board for this type is never reachable; clamping it here
		// keeps usedCount comparisons meaningful without changing which
		// layouts are admissible.
		if available := len(tbl.PlacementsForType(t.Index)); lim > available {
			lim = available
		}
		limit[t.Index] = lim
	}

	return &Engine{
		n:          n,
		placements: tbl.Placements,
		byColumn:   tbl.ByColumn,
		limit:      limit,
		usedCount:  make([]int, len(types)),
		coveredCol: make([]bool, n),
		taken:      make([]bool, len(tbl.Placements)),
		rng:        rng.New(cfg.seed),
		progress:   cfg.progress,
		cancelFn:   cfg.cancel,
	}
}

// Stats returns a snapshot of the engine's run counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) tick() {
	e.stats.Nodes++
	if depth := len(e.solutionRows); depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}
	if e.stats.Nodes%5000 == 0 {
		if e.progress != nil {
			e.progress(e.stats.Nodes, e.stats.LayoutsEvaluated)
		}
		if e.cancelFn != nil && e.cancelFn() {
			e.canceled = true
		}
	}
}

// cover selects placement pid: marks it taken, bans every row that
// conflicts with it on any of its columns, and marks those columns
// covered. It returns the bannedTrail offset uncover needs to unwind
// exactly the rows this call banned.
func (e *Engine) cover(pid int) int {
	start := len(e.bannedTrail)
	p := &e.placements[pid]
	e.taken[pid] = true
	e.usedCount[p.TileIndex]++
	for _, col := range p.Columns {
		for _, r := range e.byColumn[col] {
			if r == pid || e.taken[r] {
				continue
			}
			e.taken[r] = true
			e.bannedTrail = append(e.bannedTrail, r)
		}
		e.coveredCol[col] = true
	}
	e.coveredCount += len(p.Columns)
	return start
}

// uncover inverts cover(pid) exactly, in reverse order: uncovers
// columns, then unbans every row pushed onto the trail since start,
// then clears pid's own taken flag.
func (e *Engine) uncover(pid int, start int) {
	p := &e.placements[pid]
	for _, col := range p.Columns {
		e.coveredCol[col] = false
	}
	e.coveredCount -= len(p.Columns)
	for i := len(e.bannedTrail) - 1; i >= start; i-- {
		e.taken[e.bannedTrail[i]] = false
	}
	e.bannedTrail = e.bannedTrail[:start]
	e.usedCount[p.TileIndex]--
	e.taken[pid] = false
}

// selectColumnMRV scans uncovered columns for the one with the fewest
// viable candidate rows (not taken, tile type still in stock). It
// stops early the moment it finds a column with exactly one candidate,
// and returns deadEnd true the moment it finds one with zero.
func (e *Engine) selectColumnMRV() (col, count int, deadEnd bool) {
	best := -1
	bestCount := math.MaxInt32
	for c := 0; c < e.n; c++ {
		if e.coveredCol[c] {
			continue
		}
		n := 0
		for _, r := range e.byColumn[c] {
			if e.taken[r] {
				continue
			}
			ti := e.placements[r].TileIndex
			if e.usedCount[ti] >= e.limit[ti] {
				continue
			}
			n++
		}
		if n == 0 {
			return c, 0, true
		}
		if n < bestCount {
			best, bestCount = c, n
			if n == 1 {
				break
			}
		}
	}
	return best, bestCount, false
}

// candidatesForColumn builds the actual row candidates for col: rows
// counted by selectColumnMRV whose every other column is also still
// uncovered (selectColumnMRV only checks the one column for speed).
func (e *Engine) candidatesForColumn(col int) []int {
	var out []int
	for _, r := range e.byColumn[col] {
		if e.taken[r] {
			continue
		}
		p := &e.placements[r]
		if e.usedCount[p.TileIndex] >= e.limit[p.TileIndex] {
			continue
		}
		valid := true
		for _, c2 := range p.Columns {
			if e.coveredCol[c2] {
				valid = false
				break
			}
		}
		if valid {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) allCovered() bool {
	return e.coveredCount == e.n
}

func (e *Engine) currentLayout() Layout {
	l := make(Layout, len(e.solutionRows))
	for i, pid := range e.solutionRows {
		l[i] = e.placements[pid]
	}
	return l
}

type forcedFrame struct {
	pid   int
	start int
}

func (e *Engine) unwindForced(frames []forcedFrame) {
	for i := len(frames) - 1; i >= 0; i-- {
		e.solutionRows = e.solutionRows[:len(e.solutionRows)-1]
		e.uncover(frames[i].pid, frames[i].start)
	}
}

// dfsFirst searches for a single solution, applying forced-move
// compression: whenever the MRV column has exactly one candidate, it
// is covered in a loop rather than through recursion, with a per-call
// trail so the run of forced moves can be unwound as a unit on
// failure.
func (e *Engine) dfsFirst() bool {
	e.tick()
	if e.canceled {
		return false
	}
	if e.allCovered() {
		return true
	}

	var forced []forcedFrame
	var col, count int
	for {
		var deadEnd bool
		col, count, deadEnd = e.selectColumnMRV()
		if deadEnd {
			e.unwindForced(forced)
			return false
		}
		if count != 1 {
			break
		}
		candidates := e.candidatesForColumn(col)
		if len(candidates) != 1 {
			// selectColumnMRV's cheap count disagreed with the full
			// per-row column check; fall through to normal branching.
			break
		}
		pid := candidates[0]
		start := e.cover(pid)
		e.solutionRows = append(e.solutionRows, pid)
		forced = append(forced, forcedFrame{pid: pid, start: start})
		e.stats.ForcedMoves++
		if e.allCovered() {
			return true
		}
		e.tick()
		if e.canceled {
			e.unwindForced(forced)
			return false
		}
	}

	candidates := e.candidatesForColumn(col)
	if len(candidates) == 0 {
		e.unwindForced(forced)
		return false
	}
	rng.Shuffle(e.rng, candidates)
	for _, pid := range candidates {
		start := e.cover(pid)
		e.solutionRows = append(e.solutionRows, pid)
		if e.dfsFirst() {
			return true
		}
		e.solutionRows = e.solutionRows[:len(e.solutionRows)-1]
		e.uncover(pid, start)
		if e.canceled {
			break
		}
	}
	e.unwindForced(forced)
	return false
}

// dfsEnumerate performs plain backtracking (no forced-move
// compression — that optimization is scoped to first-solution
// mode only) and calls handler once per completed layout. It returns
// true once handler asks to stop or cancellation fires.
func (e *Engine) dfsEnumerate(handler SolutionHandler) bool {
	e.tick()
	if e.canceled {
		return true
	}
	if e.allCovered() {
		e.stats.LayoutsEvaluated++
		return handler(e.currentLayout())
	}

	col, _, deadEnd := e.selectColumnMRV()
	if deadEnd {
		return false
	}
	candidates := e.candidatesForColumn(col)
	if len(candidates) == 0 {
		return false
	}
	rng.Shuffle(e.rng, candidates)
	for _, pid := range candidates {
		start := e.cover(pid)
		e.solutionRows = append(e.solutionRows, pid)
		stop := e.dfsEnumerate(handler)
		e.solutionRows = e.solutionRows[:len(e.solutionRows)-1]
		e.uncover(pid, start)
		if stop {
			return true
		}
	}
	return false
}

// FindFirst searches for a single complete layout. ok is false if the
// board admits no exact cover under the given tile inventory.
func (e *Engine) FindFirst() (l Layout, ok bool) {
	if e.n == 0 {
		return nil, false
	}
	if e.dfsFirst() {
		return e.currentLayout(), true
	}
	return nil, false
}

// Enumerate runs plain backtracking search, invoking handler once per
// completed layout until handler returns true or the search tree is
// exhausted.
func (e *Engine) Enumerate(handler SolutionHandler) {
	if e.n == 0 {
		return
	}
	e.dfsEnumerate(handler)
}
