// Package symmetry builds the group of coordinate transforms under
// which a board's free-cell set is invariant, used to canonicalize
// completed layouts.
//
// Square boards (W==H) start from the dihedral group D4 (identity,
// three rotations, two axis flips, two diagonal flips); rectangular
// boards (W!=H) start from the Klein four-group (identity, horizontal
// flip, vertical flip, and their composition, a 180° rotation) since
// a 90° rotation would not preserve the board's own shape. A candidate
// transform is retained only if it maps the hole set onto itself
// exactly — holes are encoded as a bitset so the comparison after each
// transform is O(W·H/64) instead of a per-cell set membership walk.
package symmetry
