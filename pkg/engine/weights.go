package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thunderchess/thunder/pkg/chess"
)

// Weights selects which heuristics contribute to a position score and in
// what proportion. Index order: piece-square value, mobility, naive
// material, square control, king proximity, trade seeking.
type Weights [6]float64

// DefaultWeights scores by piece-square tables alone.
var DefaultWeights = Weights{1, 0, 0, 0, 0, 0}

var heuristics = [6]func(chess.Board, chess.Color) float64{
	PositionValue,
	MobilityValue,
	MaterialValue,
	ControlValue,
	KingProximityValue,
	TradeValue,
}

// Evaluate computes the weighted heuristic sum for the given color. A
// weight of exactly zero skips its heuristic entirely.
func (w Weights) Evaluate(b chess.Board, c chess.Color) float64 {
	var eval float64
	for i, weight := range w {
		if weight != 0 {
			eval += heuristics[i](b, c) * weight
		}
	}
	return eval
}

func (w Weights) String() string {
	var parts = make([]string, len(w))
	for i, weight := range w {
		parts[i] = strconv.FormatFloat(weight, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// ParseWeights parses a comma-separated 6-element weight vector, e.g.
// "1,0,1,0,1,0".
func ParseWeights(s string) (Weights, error) {
	var parts = strings.Split(s, ",")
	if len(parts) != len(Weights{}) {
		return Weights{}, fmt.Errorf("parse weights %q: expected %d values", s, len(Weights{}))
	}
	var w Weights
	for i, part := range parts {
		var value, err = strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Weights{}, fmt.Errorf("parse weights %q: %v", s, err)
		}
		w[i] = value
	}
	return w, nil
}
