package search

import "github.com/patioboard/tilecover/layout"

// Layout re-exports layout.Layout so callers of this package do not
// need a second import for the type threaded through SolutionHandler.
type Layout = layout.Layout

// Stats reports introspection counters about one engine run. It is not
// part of the exact-cover contract itself; it exists so callers
// (solver, cmd/tilecover) can surface search effort to a user or log
// line the way tsp's bbEngine exposes its own node/prune counters.
type Stats struct {
	Nodes            int
	ForcedMoves      int
	MaxDepth         int
	LayoutsEvaluated int
}

// ProgressFunc is invoked roughly every 5000 search nodes with the
// running node count and the number of completed layouts seen so far.
// It must return quickly; the engine does not run it concurrently.
type ProgressFunc func(nodes, found int)

// CancelFunc is polled at the same cadence as ProgressFunc. Returning
// true causes the current run to unwind and return as if the search
// tree had been exhausted.
type CancelFunc func() bool

// SolutionHandler receives one completed layout during Enumerate. It
// returns true to stop the search (cap reached), false to keep
// branching for further solutions.
type SolutionHandler func(l Layout) (stop bool)

type config struct {
	seed     int64
	progress ProgressFunc
	cancel   CancelFunc
}

func defaultConfig() config {
	return config{seed: 1}
}

// Option configures an Engine at construction time, following the same
// functional-options shape as dijkstra.Option and builder.BuilderOption.
type Option func(*config)

// WithSeed fixes the PRNG seed used for branch-order shuffling. The
// zero value is never special-cased; callers wanting determinism pass
// an explicit seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) { c.progress = fn }
}

// WithCancel installs a cooperative cancellation poll.
func WithCancel(fn CancelFunc) Option {
	return func(c *config) { c.cancel = fn }
}
