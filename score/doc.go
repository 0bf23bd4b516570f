// Package score ranks completed layouts by an aesthetic balance
// score: tile-mix variance, orientation imbalance, seam-run length,
// and four-corner joint crosses, combined by a caller-supplied weight
// vector. Lower is better.
//
// The statistics here are deliberately simple (sums, variances,
// windowed scans over the rendered grid) rather than routed through a
// dense-matrix type — but the "compute per-column/row statistics with
// a fixed deterministic traversal order, guard degenerate
// denominators with an epsilon, never mutate the input" discipline is
// the same one matrix's CenterColumns/NormalizeRowsL1/Correlation
// follow.
package score
