package chess

import "strings"

// Castling right flags.
const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
	AllCastleRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// castleMask[sq] clears the rights revoked when a piece moves from or is
// captured on sq.
var castleMask [64]int

func init() {
	for i := range castleMask {
		castleMask[i] = AllCastleRights
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}

// Board is an immutable position snapshot. Methods never mutate the
// receiver; Apply and PlayMove return a fresh value, so boards can be
// shared across search goroutines without synchronization.
type Board struct {
	squares       [64]Piece
	turn          Color
	castleRights  int
	epSquare      Square
	halfmoveClock int
	fullmove      int
}

// NewBoard returns the standard initial position.
func NewBoard() Board {
	var b, err = NewBoardFromFEN(InitialPositionFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// Piece returns the piece on sq and whether the square is occupied.
func (b Board) Piece(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return Piece{}, false
	}
	var p = b.squares[sq]
	return p, !p.IsEmpty()
}

func (b Board) Turn() Color {
	return b.turn
}

func (b Board) CastleRights() int {
	return b.castleRights
}

// EnPassantTarget returns the en-passant capture square, or SquareNone.
// It is set for exactly one ply after a double pawn push.
func (b Board) EnPassantTarget() Square {
	return b.epSquare
}

func (b Board) HalfmoveClock() int {
	return b.halfmoveClock
}

func (b Board) FullMove() int {
	return b.fullmove
}

func (b Board) kingSquare(c Color) Square {
	for sq := SquareA1; sq <= SquareH8; sq++ {
		if b.squares[sq] == (Piece{Type: King, Color: c}) {
			return sq
		}
	}
	return SquareNone
}

// isAttacked reports whether sq is attacked by any piece of the given
// color. Sliding rays stop at the first occupied square.
func (b Board) isAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally toward their forward direction, so look one
	// rank backwards from sq.
	var dr = -pawnDir(by)
	for _, df := range [2]int{-1, 1} {
		var from = sq.offset(df, dr)
		if from != SquareNone && b.squares[from] == (Piece{Type: Pawn, Color: by}) {
			return true
		}
	}
	for _, d := range knightOffsets {
		var from = sq.offset(d[0], d[1])
		if from != SquareNone && b.squares[from] == (Piece{Type: Knight, Color: by}) {
			return true
		}
	}
	for _, d := range kingOffsets {
		var from = sq.offset(d[0], d[1])
		if from != SquareNone && b.squares[from] == (Piece{Type: King, Color: by}) {
			return true
		}
	}
	for _, d := range rookDirs {
		if pt := b.firstPieceOnRay(sq, d[0], d[1], by); pt == Rook || pt == Queen {
			return true
		}
	}
	for _, d := range bishopDirs {
		if pt := b.firstPieceOnRay(sq, d[0], d[1], by); pt == Bishop || pt == Queen {
			return true
		}
	}
	return false
}

// firstPieceOnRay walks from sq in the given direction and returns the
// type of the first piece found if it belongs to color by, else Empty.
func (b Board) firstPieceOnRay(sq Square, df, dr int, by Color) PieceType {
	for cur := sq.offset(df, dr); cur != SquareNone; cur = cur.offset(df, dr) {
		var p = b.squares[cur]
		if p.IsEmpty() {
			continue
		}
		if p.Color == by {
			return p.Type
		}
		return Empty
	}
	return Empty
}

// IsAttacked reports whether sq is attacked by any piece of the given
// color.
func (b Board) IsAttacked(sq Square, by Color) bool {
	return sq.IsValid() && b.isAttacked(sq, by)
}

// InCheck reports whether the king of the given color is attacked.
func (b Board) InCheck(c Color) bool {
	var kingSq = b.kingSquare(c)
	return kingSq != SquareNone && b.isAttacked(kingSq, c.Other())
}

// Apply plays a move without legality or terminal-state checks and
// returns the resulting position. Callers that need validation use
// PlayMove; the search engine applies moves it generated itself.
func (b Board) Apply(m Move) Board {
	var next = b
	next.epSquare = SquareNone
	next.halfmoveClock = b.halfmoveClock + 1
	if b.turn == Black {
		next.fullmove = b.fullmove + 1
	}
	next.turn = b.turn.Other()

	switch m.Kind {
	case KingSideCastleMove:
		var rank = homeRank(b.turn)
		movePiece(&next, MakeSquare(FileE, rank), MakeSquare(FileG, rank))
		movePiece(&next, MakeSquare(FileH, rank), MakeSquare(FileF, rank))
		next.castleRights = b.castleRights & castleMask[MakeSquare(FileE, rank)]
	case QueenSideCastleMove:
		var rank = homeRank(b.turn)
		movePiece(&next, MakeSquare(FileE, rank), MakeSquare(FileC, rank))
		movePiece(&next, MakeSquare(FileA, rank), MakeSquare(FileD, rank))
		next.castleRights = b.castleRights & castleMask[MakeSquare(FileE, rank)]
	case NormalMove:
		var piece = b.squares[m.From]
		if !b.squares[m.To].IsEmpty() {
			next.halfmoveClock = 0
		}
		if piece.Type == Pawn {
			next.halfmoveClock = 0
			if m.To == b.epSquare && b.squares[m.To].IsEmpty() && m.From.File() != m.To.File() {
				// The captured pawn sits behind the target square.
				next.squares[m.To.offset(0, -pawnDir(b.turn))] = Piece{}
			}
			if RankDistance(m.From, m.To) == 2 {
				next.epSquare = m.From.offset(0, pawnDir(b.turn))
			}
		}
		movePiece(&next, m.From, m.To)
		if piece.Type == Pawn && m.To.Rank() == pawnPromotionRank(b.turn) && m.Promotion != Empty {
			next.squares[m.To] = Piece{Type: m.Promotion, Color: b.turn}
		}
		next.castleRights = b.castleRights & castleMask[m.From] & castleMask[m.To]
	}
	return next
}

func movePiece(b *Board, from, to Square) {
	b.squares[to] = b.squares[from]
	b.squares[from] = Piece{}
}

func homeRank(c Color) int {
	if c == White {
		return Rank1
	}
	return Rank8
}

// GameResult kinds.
type GameResultKind int8

const (
	// Continuing carries the position after the move; play goes on.
	Continuing GameResultKind = iota
	// Victory carries the winner's color: checkmate or resignation.
	Victory
	// Stalemate covers both no-legal-moves-without-check and
	// insufficient material on both sides.
	Stalemate
	// IllegalMove carries the rejected move; the board is unchanged.
	IllegalMove
)

type GameResult struct {
	Kind   GameResultKind
	Board  Board
	Winner Color
	Move   Move
}

// PlayMove validates and plays a move for the side to move. The receiver
// is never modified; on success the new position travels in the result.
func (b Board) PlayMove(m Move) GameResult {
	if m.Kind == ResignMove {
		return GameResult{Kind: Victory, Board: b, Winner: b.turn.Other()}
	}

	if b.insufficientMaterial(White) && b.insufficientMaterial(Black) {
		return GameResult{Kind: Stalemate, Board: b}
	}

	var legal = b.LegalMoves()
	if len(legal) == 0 {
		if b.InCheck(b.turn) {
			return GameResult{Kind: Victory, Board: b, Winner: b.turn.Other()}
		}
		return GameResult{Kind: Stalemate, Board: b}
	}
	if !containsMove(legal, m) {
		return GameResult{Kind: IllegalMove, Board: b, Move: m}
	}

	var next = b.Apply(m)
	if next.insufficientMaterial(White) && next.insufficientMaterial(Black) {
		return GameResult{Kind: Stalemate, Board: next}
	}
	if len(next.LegalMoves()) == 0 {
		if next.InCheck(next.turn) {
			return GameResult{Kind: Victory, Board: next, Winner: b.turn}
		}
		return GameResult{Kind: Stalemate, Board: next}
	}
	return GameResult{Kind: Continuing, Board: next}
}

func containsMove(ml []Move, m Move) bool {
	for i := range ml {
		if ml[i] == m {
			return true
		}
	}
	return false
}

// insufficientMaterial reports whether the given side cannot force mate:
// a lone king, king with one or two knights, or king with one or two
// bishops.
func (b Board) insufficientMaterial(c Color) bool {
	var knights, bishops int
	for sq := SquareA1; sq <= SquareH8; sq++ {
		var p = b.squares[sq]
		if p.IsEmpty() || p.Color != c {
			continue
		}
		switch p.Type {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			knights++
		case Bishop:
			bishops++
		}
	}
	if knights > 0 && bishops > 0 {
		return false
	}
	return knights <= 2 && bishops <= 2
}

var chessSymbols = [2][7]string{
	{" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	{" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// String renders the board as a unicode grid, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		sb.WriteByte(rankNames[rank])
		sb.WriteByte(' ')
		for file := FileA; file <= FileH; file++ {
			var p = b.squares[MakeSquare(file, rank)]
			if p.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(chessSymbols[p.Color][p.Type])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
