// Package shape generates and normalizes tile orientations.
//
// A TileType carries a base shape as a set of integer cell offsets,
// plus flags for whether 90° rotations and a mirror reflection should
// be enumerated as distinct orientations. Orientations returns the
// deduplicated set of normalized shapes reachable from the base under
// the requested symmetry operations.
//
// Normalization translates a cell set so its minimum x and y are both
// zero and sorts cells by (y,x); two shapes that differ only by
// translation normalize to the same value, which is what makes
// orientation dedup by hash correct.
package shape
