// Package solver is the single entry point a caller uses: it wires
// board/shape/placement/preflight/symmetry/search/canon/score into a
// "first-only or balanced" dispatcher, the way tsp.SolveWithMatrix
// validates once and then routes by algorithm.
//
// Solve itself never touches JSON; DecodePayload/EncodeResult sit at
// the wire boundary so the internal packed-integer-key representation
// never leaks into the external protocol.
package solver
