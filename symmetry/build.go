package symmetry

import "github.com/patioboard/tilecover/board"

func candidates(w, h int) []Transform {
	if w == h {
		return []Transform{
			{Identity}, {Rot90}, {Rot180}, {Rot270},
			{FlipH}, {FlipV}, {FlipDiag}, {FlipAntiDiag},
		}
	}
	return []Transform{{Identity}, {FlipH}, {FlipV}, {Rot180}}
}

// bitset is a flat bit vector over board cell keys, used to compare
// transformed hole sets in O(W·H/64) rather than per-cell map lookups.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) { b[i/64] |= 1 << uint(i%64) }

func (b bitset) equal(o bitset) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// Build constructs the retained symmetry group for b: every candidate
// transform (D4 for square boards, Klein-4 otherwise) that maps b's
// hole set exactly onto itself.
//
// Complexity: O(|candidates| · |holes|) to build and compare
// transformed bitsets, each comparison O(W·H/64).
func Build(b *board.Board) Group {
	n := b.W * b.H
	holes := b.Holes()

	original := newBitset(n)
	for _, c := range holes {
		original.set(board.Key(c.X, c.Y, b.W))
	}

	var kept []Transform
	for _, t := range candidates(b.W, b.H) {
		transformed := newBitset(n)
		for _, c := range holes {
			nx, ny := t.Apply(c.X, c.Y, b.W, b.H)
			if !b.InBounds(nx, ny) {
				// A malformed transform candidate for these dimensions;
				// never matches (defensive, unreachable for the fixed
				// candidate sets above).
				transformed = nil
				break
			}
			transformed.set(board.Key(nx, ny, b.W))
		}
		if transformed != nil && transformed.equal(original) {
			kept = append(kept, t)
		}
	}

	return Group{W: b.W, H: b.H, Transforms: kept}
}
