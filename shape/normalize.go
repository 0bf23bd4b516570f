package shape

import (
	"hash/fnv"
	"sort"
)

// Normalize translates cells so the minimum x and minimum y are both
// zero, then sorts by (y,x). Normalizing an already-normalized shape
// is a fixed point, and two shapes differing only by translation
// normalize to an identical result.
//
// Complexity: O(n log n) for n = len(cells).
func Normalize(cells []Offset) []Offset {
	out := make([]Offset, len(cells))
	copy(out, cells)
	if len(out) == 0 {
		return out
	}
	minX, minY := out[0].X, out[0].Y
	for _, c := range out[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	for i := range out {
		out[i].X -= minX
		out[i].Y -= minY
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Rotate90 maps every cell (x,y) to (-y,x), a 90° rotation about the
// origin. The result is not normalized.
func Rotate90(cells []Offset) []Offset {
	out := make([]Offset, len(cells))
	for i, c := range cells {
		out[i] = Offset{X: -c.Y, Y: c.X}
	}
	return out
}

// Reflect maps every cell (x,y) to (-x,y), a mirror flip across the
// y-axis. The result is not normalized.
func Reflect(cells []Offset) []Offset {
	out := make([]Offset, len(cells))
	for i, c := range cells {
		out[i] = Offset{X: -c.X, Y: c.Y}
	}
	return out
}

// hashCells computes a 64-bit FNV-1a hash over a normalized cell
// sequence, used to dedup orientations without string keys.
func hashCells(cells []Offset) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, c := range cells {
		putInt32Pair(&buf, int32(c.X), int32(c.Y))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func putInt32Pair(buf *[8]byte, x, y int32) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
	buf[4] = byte(y)
	buf[5] = byte(y >> 8)
	buf[6] = byte(y >> 16)
	buf[7] = byte(y >> 24)
}

// Orientations returns the deduplicated set of normalized orientations
// reachable from base under the requested rotation/reflection
// symmetries. The result is independent of base's own translation and
// of the order its cells are listed in.
//
// Complexity: O(k) candidate orientations generated (k ≤ 8), each
// normalized and hashed in O(n log n); dedup is O(k) via the hash set.
func Orientations(base []Offset, allowRotate, allowReflect bool) []Orientation {
	candidates := [][]Offset{base}
	if allowRotate {
		cur := base
		for i := 0; i < 3; i++ {
			cur = Rotate90(cur)
			candidates = append(candidates, cur)
		}
	}
	if allowReflect {
		n := len(candidates)
		for i := 0; i < n; i++ {
			candidates = append(candidates, Reflect(candidates[i]))
		}
	}

	seen := make(map[uint64]struct{}, len(candidates))
	out := make([]Orientation, 0, len(candidates))
	for _, cand := range candidates {
		norm := Normalize(cand)
		h := hashCells(norm)
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}

		maxX, maxY := 0, 0
		for _, c := range norm {
			if c.X > maxX {
				maxX = c.X
			}
			if c.Y > maxY {
				maxY = c.Y
			}
		}
		out = append(out, Orientation{Cells: norm, MaxX: maxX, MaxY: maxY, Hash: h})
	}
	return out
}
