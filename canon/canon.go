package canon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/layout"
	"github.com/patioboard/tilecover/symmetry"
)

// serializedPlacement is one placement's transformed, row-major-sorted
// cell sequence plus its tile index, ready to be ordered against its
// siblings.
type serializedPlacement struct {
	cells []int
	ti    int
}

func transformPlacements(l layout.Layout, t symmetry.Transform, w, h int) []serializedPlacement {
	out := make([]serializedPlacement, len(l))
	for i, p := range l {
		cells := make([]int, len(p.CellKeys))
		for j, key := range p.CellKeys {
			x, y := board.Coordinate(key, w)
			nx, ny := t.Apply(x, y, w, h)
			cells[j] = board.Key(nx, ny, w)
		}
		// Keys are y*w+x, so numeric ascending order is row-major
		// (y,x) order.
		sort.Ints(cells)
		out[i] = serializedPlacement{cells: cells, ti: p.TileIndex}
	}
	sort.Slice(out, func(a, b int) bool {
		ca, cb := out[a].cells, out[b].cells
		for i := 0; i < len(ca) && i < len(cb); i++ {
			if ca[i] != cb[i] {
				return ca[i] < cb[i]
			}
		}
		if len(ca) != len(cb) {
			return len(ca) < len(cb)
		}
		return out[a].ti < out[b].ti
	})
	return out
}

func serialize(placements []serializedPlacement) string {
	var sb strings.Builder
	for i, p := range placements {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p.ti))
		sb.WriteByte(':')
		for j, c := range p.cells {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(c))
		}
	}
	return sb.String()
}

// Form returns the canonical serialization of l over g: the
// lexicographically smallest transformed-and-sorted serialization
// across every transform in g.Transforms. g must contain at least the
// identity transform.
func Form(l layout.Layout, g symmetry.Group) string {
	best := ""
	for i, t := range g.Transforms {
		s := serialize(transformPlacements(l, t, g.W, g.H))
		if i == 0 || s < best {
			best = s
		}
	}
	return best
}
