// Package board represents the rectangular playing surface a tiling
// problem covers: a width/height and a set of forbidden "hole" cells.
// The free set — every cell that is not a hole — is what the rest of
// the solver must exactly cover.
//
// Cells are addressed by a packed row-major integer key (y*W+x) rather
// than the "x,y" string keys a naive port would use; the hot loops in
// placement and search touch these keys millions of times per solve.
//
// Complexity:
//
//   - NewBoard: O(W·H) to build the free set and column index.
//   - InBounds, IsHole, ColumnOf: O(1).
package board
