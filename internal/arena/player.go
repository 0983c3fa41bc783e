package arena

import (
	"time"

	"github.com/thunderchess/thunder/pkg/chess"
	"github.com/thunderchess/thunder/pkg/engine"
)

// SearchInfo reports what a player's search did for one move.
type SearchInfo struct {
	Depth   int
	Nodes   uint64
	Score   float64
	Elapsed time.Duration
}

// Player selects a move for the side to move on the given board.
type Player interface {
	Name() string
	SelectMove(b chess.Board) (chess.Move, SearchInfo)
}

// FixedDepthPlayer searches every move to the same depth.
type FixedDepthPlayer struct {
	PlayerName string
	Depth      int
	Weights    engine.Weights
}

func (p *FixedDepthPlayer) Name() string {
	return p.PlayerName
}

func (p *FixedDepthPlayer) SelectMove(b chess.Board) (chess.Move, SearchInfo) {
	var started = time.Now()
	var move, nodes, score = engine.BestMove(b, p.Depth, p.Weights)
	return move, SearchInfo{
		Depth:   p.Depth,
		Nodes:   nodes,
		Score:   score,
		Elapsed: time.Since(started),
	}
}

// DeepeningPlayer re-runs the full search at increasing depth, keeping
// the result of the last completed depth. MinTime is a floor, checked
// only between whole-depth searches, never mid-search; once MinNodes
// leaves have been evaluated in total, deepening stops on the next check
// regardless of elapsed time.
type DeepeningPlayer struct {
	PlayerName string
	Weights    engine.Weights
	MinTime    time.Duration
	MinNodes   uint64
	MaxDepth   int
}

func (p *DeepeningPlayer) Name() string {
	return p.PlayerName
}

func (p *DeepeningPlayer) SelectMove(b chess.Board) (chess.Move, SearchInfo) {
	var started = time.Now()
	var maxDepth = p.MaxDepth
	if maxDepth < 1 {
		maxDepth = 6
	}

	var info SearchInfo
	var move chess.Move
	var totalNodes uint64
	for depth := 1; depth <= maxDepth; depth++ {
		var m, nodes, score = engine.BestMove(b, depth, p.Weights)
		totalNodes += nodes
		move = m
		info = SearchInfo{
			Depth:   depth,
			Nodes:   totalNodes,
			Score:   score,
			Elapsed: time.Since(started),
		}
		if info.Elapsed >= p.MinTime || totalNodes >= p.MinNodes {
			break
		}
	}
	return move, info
}
