package solver

import (
	"encoding/json"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/score"
)

func scoreWeightsFromSpec(w WeightsSpec) score.Weights {
	return score.Weights{
		Mix:    w.TileCountVariance,
		Orient: w.OrientationBalance,
		Seam:   w.SeamPenalty,
		Cross:  w.CrossJoints,
	}
}

// placementMessage is one entry of the wire `layout` array: a tile
// index plus its absolute board cells.
type placementMessage struct {
	TI    int     `json:"ti"`
	Cells [][]int `json:"cells"`
}

type resultMessage struct {
	Type   string             `json:"type"`
	Found  bool               `json:"found"`
	Layout []placementMessage `json:"layout"`
	Score  *float64           `json:"score"`
}

type infeasibleMessage struct {
	Type    string   `json:"type"`
	Reasons []string `json:"reasons"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type progressMessage struct {
	Type  string `json:"type"`
	Nodes int    `json:"nodes"`
	Found int    `json:"found"`
}

// EncodeResult renders an Outcome as the matching terminal JSON
// message: "infeasible" or "result".
func EncodeResult(o Outcome, w int) ([]byte, error) {
	if o.Kind == KindInfeasible {
		return json.Marshal(infeasibleMessage{Type: string(KindInfeasible), Reasons: o.Reasons})
	}

	entries := make([]placementMessage, len(o.Layout))
	for i, p := range o.Layout {
		cells := make([][]int, len(p.CellKeys))
		for j, key := range p.CellKeys {
			x, y := board.Coordinate(key, w)
			cells[j] = []int{x, y}
		}
		entries[i] = placementMessage{TI: p.TileIndex, Cells: cells}
	}

	return json.Marshal(resultMessage{
		Type:   string(KindResult),
		Found:  o.Found,
		Layout: entries,
		Score:  o.Score,
	})
}

// EncodeError renders the "error" message class, for internal
// failures — the Go error Solve/DecodePayload returns, never
// ordinary infeasibility.
func EncodeError(err error) []byte {
	b, _ := json.Marshal(errorMessage{Type: "error", Message: err.Error()})
	return b
}

// EncodeProgress renders one "progress" message. Callers
// wire this into a search.ProgressFunc (via solver.WithProgress) to
// stream progress over whatever transport they use.
func EncodeProgress(nodes, found int) []byte {
	b, _ := json.Marshal(progressMessage{Type: "progress", Nodes: nodes, Found: found})
	return b
}
