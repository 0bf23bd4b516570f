// Package preflight runs the cheap necessary-condition tests that
// prove a tiling problem infeasible before the exact-cover search ever
// starts: no stock at all, insufficient total area, a cell-count
// parity mismatch, a gcd divisibility failure, and a checkerboard
// coloring imbalance that no available tile can absorb.
//
// Each failing test contributes one human-readable reason string.
// Preflight never returns a Go error for an ordinary infeasibility
// verdict — per the external contract, "infeasible" is a data result,
// not a failure of the oracle itself.
package preflight
