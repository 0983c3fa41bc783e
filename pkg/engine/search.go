package engine

import (
	"sync"
	"sync/atomic"

	"github.com/thunderchess/thunder/pkg/chess"
)

const (
	alphaInit = -1000000.0
	betaInit  = 1000000.0
	// Bound scores for positions with no legal replies.
	winValue  = 999999.0
	lossValue = -999999.0
)

// BestMove searches depth plies past each legal root move and returns
// the maximal-scoring move for the side to move, the number of leaf
// positions evaluated, and that move's score.
//
// Root moves are evaluated in parallel, one goroutine per move. Each
// goroutine applies its move to its own board clone; the node counter
// and the transposition cache are the only shared state. Ties break to
// the first maximum in legal-move order, so repeated invocations return
// the same move and score.
//
// Invoking a search on a position with no legal moves is a programmer
// error and panics: terminal states belong to Board.PlayMove.
func BestMove(b chess.Board, depth int, w Weights) (chess.Move, uint64, float64) {
	return searchRoot(b, depth, w, true)
}

// WorstMove mirrors BestMove but selects the minimal-scoring root move.
func WorstMove(b chess.Board, depth int, w Weights) (chess.Move, uint64, float64) {
	return searchRoot(b, depth, w, false)
}

func searchRoot(b chess.Board, depth int, w Weights, pickMax bool) (chess.Move, uint64, float64) {
	var moves = b.LegalMoves()
	if len(moves) == 0 {
		panic("engine: search invoked on a terminal position")
	}

	var color = b.Turn()
	var nodes uint64
	var cache = newEvalCache()

	var scores = make([]float64, len(moves))
	var wg sync.WaitGroup
	for i, m := range moves {
		wg.Add(1)
		go func(i int, m chess.Move) {
			defer wg.Done()
			var child = b.Apply(m)
			scores[i] = minimax(child, depth, alphaInit, betaInit, false, color, w, &nodes, cache)
		}(i, m)
	}
	wg.Wait()

	var bestIndex = 0
	for i := 1; i < len(scores); i++ {
		if pickMax && scores[i] > scores[bestIndex] {
			bestIndex = i
		} else if !pickMax && scores[i] < scores[bestIndex] {
			bestIndex = i
		}
	}
	return moves[bestIndex], atomic.LoadUint64(&nodes), scores[bestIndex]
}

// minimax performs alpha-beta minimax from the perspective of one fixed
// color, alternating the maximizing flag per ply. At depth 0 it computes
// the weighted heuristic sum, records it in the shared cache and counts
// the leaf. At interior nodes a cache hit for a child position reached
// earlier via a different move order short-circuits its subtree.
func minimax(b chess.Board, depth int, alpha, beta float64, maximizing bool,
	perspective chess.Color, w Weights, nodes *uint64, cache *evalCache) float64 {

	if depth == 0 {
		atomic.AddUint64(nodes, 1)
		var eval = w.Evaluate(b, perspective)
		cache.store(b.CacheKey(), eval)
		return eval
	}

	var moves = b.LegalMoves()

	if maximizing {
		var best = lossValue
		for _, m := range moves {
			var child = b.Apply(m)
			var value, ok = cache.lookup(child.CacheKey())
			if !ok {
				value = minimax(child, depth-1, alpha, beta, false, perspective, w, nodes, cache)
			}
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				return best
			}
		}
		return best
	}

	var best = winValue
	for _, m := range moves {
		var child = b.Apply(m)
		var value, ok = cache.lookup(child.CacheKey())
		if !ok {
			value = minimax(child, depth-1, alpha, beta, true, perspective, w, nodes, cache)
		}
		if value < best {
			best = value
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			return best
		}
	}
	return best
}
