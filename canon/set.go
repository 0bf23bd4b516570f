package canon

import "hash/fnv"

// Set deduplicates canonical-form strings. It buckets forms by a
// 64-bit FNV hash and compares full strings within a bucket, so a hash
// collision never merges two distinct forms. The full string of every
// distinct form is retained.
type Set struct {
	buckets map[uint64][]string
}

// NewSet returns an empty dedup set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]string)}
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Add inserts form if not already present, returning true iff this
// was a new (non-duplicate) canonical form.
func (s *Set) Add(form string) bool {
	h := hashString(form)
	bucket := s.buckets[h]
	for _, existing := range bucket {
		if existing == form {
			return false
		}
	}
	s.buckets[h] = append(bucket, form)
	return true
}

// Len returns the number of distinct forms retained so far.
func (s *Set) Len() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}
