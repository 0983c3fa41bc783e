package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMove(t *testing.T) {
	var tests = []struct {
		input string
		want  Move
	}{
		{"e2e4", MovePiece(SquareE2, SquareE4)},
		{"e2 e4", MovePiece(SquareE2, SquareE4)},
		{"e2 to e4", MovePiece(SquareE2, SquareE4)},
		{"  g1 f3  ", MovePiece(SquareG1, SquareF3)},
		{"e7 to e8 queen", MovePromotion(SquareE7, SquareE8, Queen)},
		{"a2 to a1 n", MovePromotion(SquareA2, SquareA1, Knight)},
		{"b7 to b8 Rook", MovePromotion(SquareB7, SquareB8, Rook)},
		{"O-O", CastleKingSide},
		{"0-0", CastleKingSide},
		{"o-o", CastleKingSide},
		{"castle kingside", CastleKingSide},
		{"Kingside Castle", CastleKingSide},
		{"O-O-O", CastleQueenSide},
		{"0-0-0", CastleQueenSide},
		{"castle queenside", CastleQueenSide},
		{"resign", Resign},
		{"Resigns", Resign},
	}
	for _, test := range tests {
		var got, err = ParseMove(test.input)
		if err != nil {
			t.Error(test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	var inputs = []string{
		"",
		"e2",
		"e2e9",
		"i2 i4",
		"e2 to",
		"e2 too e4",
		"e7 to e8 king",
		"e7 to e8 pawn",
		"e7 to e8 sock",
		"e2 e4 extra words here",
	}
	for _, input := range inputs {
		if m, err := ParseMove(input); err == nil {
			t.Errorf("%q parsed as %v, want error", input, m)
		}
	}
}

func TestMoveString(t *testing.T) {
	var tests = []struct {
		move Move
		want string
	}{
		{MovePiece(SquareE2, SquareE4), "e2 to e4"},
		{MovePromotion(SquareE7, SquareE8, Queen), "e7 to e8 queen"},
		{MovePromotion(SquareA2, SquareA1, Knight), "a2 to a1 knight"},
		{CastleKingSide, "O-O"},
		{CastleQueenSide, "O-O-O"},
		{Resign, "Resign"},
	}
	for _, test := range tests {
		if got := test.move.String(); got != test.want {
			t.Errorf("%v: got %q want %q", test.move, got, test.want)
		}
	}
}

// Printed moves must parse back to the same move.
func TestMoveRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		var b = mustBoard(t, fen)
		for _, m := range b.LegalMoves() {
			var parsed, err = ParseMove(m.String())
			if err != nil {
				t.Error(fen, m, err)
				continue
			}
			if parsed != m {
				t.Error(fen, "round trip", m, "->", parsed)
			}
		}
	}
}
