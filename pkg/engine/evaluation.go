// Package engine selects moves by parallel alpha-beta minimax over
// heuristic position scores.
package engine

import "github.com/thunderchess/thunder/pkg/chess"

// Piece material in pawn units for the naive and trade heuristics.
var materialValue = [7]float64{0, 1, 3, 3, 5, 9, 0}

// Piece-square tables in centipawns, written rank 8 first as usually
// printed. White pieces index with the flipped square, black with the
// square itself.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pieceTables = [7]*[64]int{nil, &pawnTable, &knightTable, &bishopTable, &rookTable, &queenTable, &kingTable}

// tableSquare maps a board square to a piece-table index. The tables are
// written from White's point of view with rank 8 on top, so White flips.
func tableSquare(sq chess.Square, c chess.Color) chess.Square {
	if c == chess.White {
		return chess.FlipSquare(sq)
	}
	return sq
}

func pieceValue(p chess.Piece, sq chess.Square) float64 {
	var table = pieceTables[p.Type]
	return materialValue[p.Type] + float64(table[tableSquare(sq, p.Color)])/100
}

// PositionValue scores material and placement via the piece-square
// tables, own pieces minus enemy pieces, for the given color.
func PositionValue(b chess.Board, c chess.Color) float64 {
	var value float64
	for sq := chess.SquareA1; sq <= chess.SquareH8; sq++ {
		var p, ok = b.Piece(sq)
		if !ok {
			continue
		}
		if p.Color == c {
			value += pieceValue(p, sq)
		} else {
			value -= pieceValue(p, sq)
		}
	}
	return value
}

// MobilityValue scores the count of legal moves available to the given
// color against the count available to the opponent.
func MobilityValue(b chess.Board, c chess.Color) float64 {
	return float64(len(b.LegalMovesFor(c)) - len(b.LegalMovesFor(c.Other())))
}

// MaterialValue is the naive material balance in pawn units.
func MaterialValue(b chess.Board, c chess.Color) float64 {
	var value float64
	for sq := chess.SquareA1; sq <= chess.SquareH8; sq++ {
		var p, ok = b.Piece(sq)
		if !ok {
			continue
		}
		if p.Color == c {
			value += materialValue[p.Type]
		} else {
			value -= materialValue[p.Type]
		}
	}
	return value
}

// ControlValue scores square control: the number of squares the given
// color attacks minus the number the opponent attacks.
func ControlValue(b chess.Board, c chess.Color) float64 {
	var value float64
	for sq := chess.SquareA1; sq <= chess.SquareH8; sq++ {
		if b.IsAttacked(sq, c) {
			value++
		}
		if b.IsAttacked(sq, c.Other()) {
			value--
		}
	}
	return value
}

// KingProximityValue rewards keeping pieces close to the enemy king: the
// inverse of the smallest distance from any of the color's non-king
// pieces to the opposing king.
func KingProximityValue(b chess.Board, c chess.Color) float64 {
	var kingSq = chess.SquareNone
	for sq := chess.SquareA1; sq <= chess.SquareH8; sq++ {
		var p, ok = b.Piece(sq)
		if ok && p.Type == chess.King && p.Color == c.Other() {
			kingSq = sq
			break
		}
	}
	if kingSq == chess.SquareNone {
		return 0
	}
	var minDist = 0
	for sq := chess.SquareA1; sq <= chess.SquareH8; sq++ {
		var p, ok = b.Piece(sq)
		if !ok || p.Color != c || p.Type == chess.King {
			continue
		}
		var d = chess.SquareDistance(sq, kingSq)
		if minDist == 0 || d < minDist {
			minDist = d
		}
	}
	if minDist == 0 {
		return 0
	}
	return 1 / float64(minDist)
}

// TradeValue favors positions with less total material on the board,
// regardless of whose it is. Useful for engines that want simplification.
func TradeValue(b chess.Board, c chess.Color) float64 {
	var total float64
	for sq := chess.SquareA1; sq <= chess.SquareH8; sq++ {
		if p, ok := b.Piece(sq); ok {
			total += materialValue[p.Type]
		}
	}
	return -total
}
