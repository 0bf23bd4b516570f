package solver

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/patioboard/tilecover/search"
)

type config struct {
	seed     int64
	seeded   bool
	logger   *zerolog.Logger
	progress search.ProgressFunc
	cancel   search.CancelFunc
	reqID    uuid.UUID
}

func defaultConfig() config {
	return config{reqID: uuid.New()}
}

// Option configures one Solve call, following the same
// functional-options shape as search.Option. None of these fields are
// part of the wire contract — they govern engine internals (seed,
// progress, cancellation) and observability (logging).
type Option func(*config)

// WithSeed fixes the PRNG seed used for the search engine's branch-order
// shuffling, for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed, c.seeded = seed, true }
}

// WithLogger attaches a zerolog.Logger; Solve emits Debug-level events
// for the pre-flight verdict, search start, and search stop. No
// separate event marks the solution cap being reached. Omit it to
// keep the core silent, which is the default: no I/O on the hot path.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = &logger }
}

// WithProgress installs a progress callback, invoked roughly every
// 5000 search nodes.
func WithProgress(fn search.ProgressFunc) Option {
	return func(c *config) { c.progress = fn }
}

// WithCancel installs a cooperative cancellation poll, checked at the
// same cadence as the progress callback.
func WithCancel(fn search.CancelFunc) Option {
	return func(c *config) { c.cancel = fn }
}
