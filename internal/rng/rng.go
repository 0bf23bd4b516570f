// Package rng provides a seedable Fisher–Yates shuffle, kept internal
// since callers only ever need "shuffle this slice of candidate rows",
// never a general PRNG surface. Mirrors the nil-safe, seedable
// math/rand.Rand wiring builder.BuilderConfig uses for its own
// randomized tie-breaking.
package rng

import "math/rand"

// New returns a *rand.Rand seeded with seed. Two Sources built from the
// same seed produce the same shuffle sequence, which is what lets
// search.Option's WithSeed make a run reproducible.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes s in place using Fisher–Yates, drawing from r.
func Shuffle(r *rand.Rand, s []int) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
