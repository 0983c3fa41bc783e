package chess

// promotionOrder fixes the order promotion moves are generated in, which
// keeps legal-move enumeration deterministic.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// pseudoMovesFor generates every move consistent with piece movement and
// board occupancy for the given color, ignoring king safety. Castling is
// handled separately because its legality conditions include attacks.
func (b Board) pseudoMovesFor(c Color) []Move {
	var ml = make([]Move, 0, 64)
	for sq := SquareA1; sq <= SquareH8; sq++ {
		var p = b.squares[sq]
		if p.IsEmpty() || p.Color != c {
			continue
		}
		switch p.Type {
		case Pawn:
			ml = b.appendPawnMoves(ml, sq, c)
		case Knight:
			ml = b.appendOffsetMoves(ml, sq, c, knightOffsets)
		case Bishop:
			ml = b.appendSlidingMoves(ml, sq, c, bishopDirs[:])
		case Rook:
			ml = b.appendSlidingMoves(ml, sq, c, rookDirs[:])
		case Queen:
			ml = b.appendSlidingMoves(ml, sq, c, rookDirs[:])
			ml = b.appendSlidingMoves(ml, sq, c, bishopDirs[:])
		case King:
			ml = b.appendOffsetMoves(ml, sq, c, kingOffsets)
		}
	}
	return ml
}

func (b Board) appendPawnMoves(ml []Move, sq Square, c Color) []Move {
	var dir = pawnDir(c)

	var forward = sq.offset(0, dir)
	if forward != SquareNone && b.squares[forward].IsEmpty() {
		ml = b.appendPawnMove(ml, sq, forward, c)
		if sq.Rank() == pawnStartRank(c) {
			var double = sq.offset(0, 2*dir)
			if b.squares[double].IsEmpty() {
				ml = append(ml, MovePiece(sq, double))
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		var to = sq.offset(df, dir)
		if to == SquareNone {
			continue
		}
		var target = b.squares[to]
		if !target.IsEmpty() && target.Color != c {
			ml = b.appendPawnMove(ml, sq, to, c)
		} else if to == b.epSquare && target.IsEmpty() {
			ml = append(ml, MovePiece(sq, to))
		}
	}
	return ml
}

func (b Board) appendPawnMove(ml []Move, from, to Square, c Color) []Move {
	if to.Rank() == pawnPromotionRank(c) {
		for _, pt := range promotionOrder {
			ml = append(ml, MovePromotion(from, to, pt))
		}
		return ml
	}
	return append(ml, MovePiece(from, to))
}

func (b Board) appendOffsetMoves(ml []Move, sq Square, c Color, offsets [8][2]int) []Move {
	for _, d := range offsets {
		var to = sq.offset(d[0], d[1])
		if to == SquareNone {
			continue
		}
		var target = b.squares[to]
		if target.IsEmpty() || target.Color != c {
			ml = append(ml, MovePiece(sq, to))
		}
	}
	return ml
}

func (b Board) appendSlidingMoves(ml []Move, sq Square, c Color, dirs [][2]int) []Move {
	for _, d := range dirs {
		for to := sq.offset(d[0], d[1]); to != SquareNone; to = to.offset(d[0], d[1]) {
			var target = b.squares[to]
			if target.IsEmpty() {
				ml = append(ml, MovePiece(sq, to))
				continue
			}
			if target.Color != c {
				ml = append(ml, MovePiece(sq, to))
			}
			break
		}
	}
	return ml
}

// LegalMoves returns every legal move for the side to move.
func (b Board) LegalMoves() []Move {
	return b.LegalMovesFor(b.turn)
}

// LegalMovesFor filters pseudo-legal moves by simulating each one and
// rejecting any that leaves the mover's own king attacked, then appends
// the castle moves whose full conditions hold. The order is deterministic:
// squares ascending, fixed pattern order, kingside castle before queenside.
func (b Board) LegalMovesFor(c Color) []Move {
	var result = make([]Move, 0, 32)
	for _, m := range b.pseudoMovesFor(c) {
		if !b.leavesKingInCheck(m, c) {
			result = append(result, m)
		}
	}
	if b.canCastle(c, true) {
		result = append(result, CastleKingSide)
	}
	if b.canCastle(c, false) {
		result = append(result, CastleQueenSide)
	}
	return result
}

func (b Board) leavesKingInCheck(m Move, c Color) bool {
	var next = b
	next.turn = c // en-passant and promotion apply for the moving color
	return next.Apply(m).InCheck(c)
}

// canCastle checks the full castling legality conditions: the right is
// intact with king and rook in place, the squares between them are empty,
// and no square on the king's path, start and end included, is attacked.
func (b Board) canCastle(c Color, kingSide bool) bool {
	var right int
	var emptyFiles, kingPath []int
	if kingSide {
		right = WhiteKingSide
		emptyFiles = []int{FileF, FileG}
		kingPath = []int{FileE, FileF, FileG}
	} else {
		right = WhiteQueenSide
		emptyFiles = []int{FileB, FileC, FileD}
		kingPath = []int{FileE, FileD, FileC}
	}
	if c == Black {
		right <<= 2
	}
	if b.castleRights&right == 0 {
		return false
	}

	var rank = homeRank(c)
	if b.squares[MakeSquare(FileE, rank)] != (Piece{Type: King, Color: c}) {
		return false
	}
	var rookFile = FileH
	if !kingSide {
		rookFile = FileA
	}
	if b.squares[MakeSquare(rookFile, rank)] != (Piece{Type: Rook, Color: c}) {
		return false
	}
	for _, file := range emptyFiles {
		if !b.squares[MakeSquare(file, rank)].IsEmpty() {
			return false
		}
	}
	for _, file := range kingPath {
		if b.isAttacked(MakeSquare(file, rank), c.Other()) {
			return false
		}
	}
	return true
}
