package chess

import (
	"fmt"
	"strings"
)

type MoveKind int8

const (
	NormalMove MoveKind = iota
	KingSideCastleMove
	QueenSideCastleMove
	ResignMove
)

// Move is one playable action: a piece move between two squares with an
// optional promotion, a castle on either wing, or a resignation. Equality
// is structural; Less defines a total order.
type Move struct {
	Kind      MoveKind
	From, To  Square
	Promotion PieceType
}

var (
	CastleKingSide  = Move{Kind: KingSideCastleMove}
	CastleQueenSide = Move{Kind: QueenSideCastleMove}
	Resign          = Move{Kind: ResignMove}
)

func MovePiece(from, to Square) Move {
	return Move{Kind: NormalMove, From: from, To: to}
}

func MovePromotion(from, to Square, promotion PieceType) Move {
	return Move{Kind: NormalMove, From: from, To: to, Promotion: promotion}
}

func (m Move) Less(o Move) bool {
	if m.Kind != o.Kind {
		return m.Kind < o.Kind
	}
	if m.From != o.From {
		return m.From < o.From
	}
	if m.To != o.To {
		return m.To < o.To
	}
	return m.Promotion < o.Promotion
}

func (m Move) String() string {
	switch m.Kind {
	case KingSideCastleMove:
		return "O-O"
	case QueenSideCastleMove:
		return "O-O-O"
	case ResignMove:
		return "Resign"
	}
	if m.Promotion != Empty {
		return fmt.Sprintf("%v to %v %v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v to %v", m.From, m.To)
}

// ParseMove parses move text. Accepted forms:
//
//	resign, resigns
//	castle kingside, kingside castle, O-O, 0-0, o-o
//	castle queenside, queenside castle, O-O-O, 0-0-0, o-o-o
//	e2e4
//	e2 e4
//	e2 to e4
//	e7 to e8 queen (promotion; king and pawn are rejected)
//
// Parsing never panics; malformed input yields a descriptive error.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "resign", "resigns":
		return Resign, nil
	case "kingside castle", "castle kingside", "o-o", "0-0":
		return CastleKingSide, nil
	case "queenside castle", "castle queenside", "o-o-o", "0-0-0":
		return CastleQueenSide, nil
	}

	var words = strings.Fields(s)
	switch {
	case len(words) == 1 && len(words[0]) == 4:
		var from, err = ParseSquare(words[0][:2])
		if err != nil {
			return Move{}, err
		}
		to, err := ParseSquare(words[0][2:4])
		if err != nil {
			return Move{}, err
		}
		return MovePiece(from, to), nil
	case len(words) == 2:
		var from, err = ParseSquare(words[0])
		if err != nil {
			return Move{}, err
		}
		to, err := ParseSquare(words[1])
		if err != nil {
			return Move{}, err
		}
		return MovePiece(from, to), nil
	case len(words) == 3 && words[1] == "to":
		var from, err = ParseSquare(words[0])
		if err != nil {
			return Move{}, err
		}
		to, err := ParseSquare(words[2])
		if err != nil {
			return Move{}, err
		}
		return MovePiece(from, to), nil
	case len(words) == 4 && words[1] == "to":
		var from, err = ParseSquare(words[0])
		if err != nil {
			return Move{}, err
		}
		to, err := ParseSquare(words[2])
		if err != nil {
			return Move{}, err
		}
		promotion, err := ParsePieceType(words[3])
		if err != nil {
			return Move{}, err
		}
		if promotion == King || promotion == Pawn {
			return Move{}, fmt.Errorf("invalid promotion to %v", promotion)
		}
		return MovePromotion(from, to, promotion), nil
	}
	return Move{}, fmt.Errorf("invalid move format %q", s)
}
