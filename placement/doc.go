// Package placement enumerates every way a tile type's orientations
// can land on a board without covering a hole or spilling off the
// edge, and builds the reverse index the search engine needs to find,
// for a given free cell, every placement that covers it.
//
// Each kept placement is assigned a stable, monotonically increasing
// id (pid) in the order it is discovered: outer loop over tile type,
// then orientation, then offset in row-major order. This makes
// placement iteration and the resulting exact-cover rows reproducible
// across runs for the same problem.
package placement
