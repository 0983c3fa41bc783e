package chess

import "fmt"

// BoardBuilder constructs arbitrary positions for puzzles and tests. The
// zero position is an empty board, White to move, no castling rights, no
// en-passant target.
type BoardBuilder struct {
	board Board
	err   error
}

func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{
		board: Board{
			epSquare: SquareNone,
			fullmove: 1,
		},
	}
}

func (bb *BoardBuilder) Piece(sq Square, p Piece) *BoardBuilder {
	if !sq.IsValid() {
		bb.fail(fmt.Errorf("place piece: invalid square %d", int(sq)))
		return bb
	}
	if p.Type < Pawn || p.Type > King {
		bb.fail(fmt.Errorf("place piece: invalid piece type %d", int(p.Type)))
		return bb
	}
	bb.board.squares[sq] = p
	return bb
}

func (bb *BoardBuilder) Turn(c Color) *BoardBuilder {
	bb.board.turn = c
	return bb
}

func (bb *BoardBuilder) CastleRights(rights int) *BoardBuilder {
	if rights&^AllCastleRights != 0 {
		bb.fail(fmt.Errorf("invalid castle rights %#x", rights))
		return bb
	}
	bb.board.castleRights = rights
	return bb
}

func (bb *BoardBuilder) EnPassant(sq Square) *BoardBuilder {
	if sq != SquareNone && sq.Rank() != Rank3 && sq.Rank() != Rank6 {
		bb.fail(fmt.Errorf("invalid en-passant square %v", sq))
		return bb
	}
	bb.board.epSquare = sq
	return bb
}

func (bb *BoardBuilder) HalfmoveClock(n int) *BoardBuilder {
	if n < 0 {
		bb.fail(fmt.Errorf("invalid halfmove clock %d", n))
		return bb
	}
	bb.board.halfmoveClock = n
	return bb
}

func (bb *BoardBuilder) FullMove(n int) *BoardBuilder {
	if n < 1 {
		bb.fail(fmt.Errorf("invalid fullmove number %d", n))
		return bb
	}
	bb.board.fullmove = n
	return bb
}

func (bb *BoardBuilder) fail(err error) {
	if bb.err == nil {
		bb.err = err
	}
}

// Build validates and returns the position. Each side must have exactly
// one king; the side not on move may not already be in check.
func (bb *BoardBuilder) Build() (Board, error) {
	if bb.err != nil {
		return Board{}, bb.err
	}
	for _, c := range [2]Color{White, Black} {
		var kings = 0
		for sq := SquareA1; sq <= SquareH8; sq++ {
			if bb.board.squares[sq] == (Piece{Type: King, Color: c}) {
				kings++
			}
		}
		if kings != 1 {
			return Board{}, fmt.Errorf("invalid position: %v has %d kings", c, kings)
		}
	}
	if bb.board.InCheck(bb.board.turn.Other()) {
		return Board{}, fmt.Errorf("invalid position: %v is in check but not on move",
			bb.board.turn.Other())
	}
	return bb.board, nil
}
