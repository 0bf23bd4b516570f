package solver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/patioboard/tilecover/board"
	"github.com/patioboard/tilecover/shape"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// payloadValidator returns a package-wide validator.Validate singleton,
// the same lazily-built-once pattern mcpxcel's pkg/validation uses.
func payloadValidator() *validator.Validate {
	validatorOnce.Do(func() { validatorInst = validator.New() })
	return validatorInst
}

// WeightsSpec is the wire shape of score.Weights (the
// `balance.weights` field).
type WeightsSpec struct {
	TileCountVariance  float64 `json:"tileCountVariance"`
	OrientationBalance float64 `json:"orientationBalance"`
	SeamPenalty        float64 `json:"seamPenalty"`
	CrossJoints        float64 `json:"crossJoints"`
}

// BalanceSpec is the wire shape of the `balance` field.
type BalanceSpec struct {
	NoBalance              bool               `json:"noBalance"`
	Weights                *WeightsSpec       `json:"weights,omitempty"`
	DesiredMix             map[string]float64 `json:"desiredMix,omitempty"`
	MaxSolutionsToEvaluate int                `json:"maxSolutionsToEvaluate,omitempty"`
}

// TileTypeSpec is the wire shape of one `tileTypes` entry.
type TileTypeSpec struct {
	Name         string  `json:"name" validate:"required"`
	Base         [][]int `json:"base" validate:"required,min=1,dive,len=2"`
	AllowRotate  bool    `json:"allowRotate"`
	AllowReflect bool    `json:"allowReflect"`
	Count        *int    `json:"count" validate:"omitempty,gte=0"`
}

// Payload is the exact JSON wire shape of the Solve input
// message. DecodePayload turns it into a Problem; the internal
// Problem/Board/TileType types use packed integer cell keys, so this
// is the only place the "x,y" string representation exists.
type Payload struct {
	W                     int            `json:"w" validate:"required,gt=0"`
	H                     int            `json:"h" validate:"required,gt=0"`
	Holes                 []string       `json:"holes,omitempty"`
	TileTypes             []TileTypeSpec `json:"tileTypes" validate:"required,min=1,dive"`
	UniqueByBoardSymmetry bool           `json:"uniqueByBoardSymmetry"`
	Balance               BalanceSpec    `json:"balance"`
	Cap                   int            `json:"cap,omitempty"`
}

// DecodePayload parses and validates raw JSON into a Problem. A
// validation failure wraps ErrInvalidPayload; a malformed hole string
// wraps ErrMalformedHole.
func DecodePayload(data []byte) (Problem, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Problem{}, fmt.Errorf("solver: decode payload: %w", err)
	}
	if err := payloadValidator().Struct(p); err != nil {
		return Problem{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	holes := make([]board.Cell, 0, len(p.Holes))
	for _, h := range p.Holes {
		x, y, err := parseHole(h)
		if err != nil {
			return Problem{}, err
		}
		holes = append(holes, board.Cell{X: x, Y: y})
	}

	types := make([]shape.TileType, len(p.TileTypes))
	for i, spec := range p.TileTypes {
		base := make([]shape.Offset, len(spec.Base))
		for j, xy := range spec.Base {
			base[j] = shape.Offset{X: xy[0], Y: xy[1]}
		}
		types[i] = shape.TileType{
			Index:        i,
			Name:         spec.Name,
			Base:         base,
			AllowRotate:  spec.AllowRotate,
			AllowReflect: spec.AllowReflect,
			Count:        spec.Count,
		}
	}

	balance := BalanceConfig{
		NoBalance:              p.Balance.NoBalance,
		DesiredMix:             p.Balance.DesiredMix,
		MaxSolutionsToEvaluate: p.Balance.MaxSolutionsToEvaluate,
	}
	if p.Balance.Weights != nil {
		w := p.Balance.Weights
		balance.Weights = scoreWeightsFromSpec(*w)
	}

	return Problem{
		W:                     p.W,
		H:                     p.H,
		Holes:                 holes,
		TileTypes:             types,
		UniqueByBoardSymmetry: p.UniqueByBoardSymmetry,
		Balance:               balance,
		Cap:                   p.Cap,
	}, nil
}

func parseHole(s string) (int, int, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHole, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHole, s)
	}
	return x, y, nil
}
