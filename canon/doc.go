// Package canon reduces a completed layout to a canonical string under
// a board's retained symmetry group, and maintains a deduplication set
// keyed by that canonical form.
//
// For each retained transform, every placement's cells are mapped
// through it, sorted into row-major order, and the placement list
// itself is sorted lexicographically by cell sequence (tile index as
// the final tiebreaker). The canonical form is the lexicographically
// smallest of these serializations across the whole group — strict
// invariance: only transforms that map the board's free set exactly
// onto itself ever participate, so there is no partial or asymmetric
// canonicalization.
package canon
