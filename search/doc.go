// Package search implements the exact-cover engine: Algorithm X
// specialized with Minimum-Remaining-Values (MRV) column selection,
// forced-move compression in first-solution mode, per-tile-type
// inventory limits, and Fisher–Yates-shuffled branch order for output
// variety.
//
// The engine carries all of its working state explicitly in a single
// struct (covered columns, a combined used/banned row flag, per-type
// usage counters, the chosen-row stack, and a shared banned-row trail
// with per-frame offsets) rather than allocating fresh slices per
// recursive call — the same discipline tsp's branch-and-bound engine
// uses for its visited/path buffers.
package search
