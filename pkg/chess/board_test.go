package chess

import (
	"testing"
)

var testFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	// Kiwipete: https://www.chessprogramming.org/Perft_Results
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	// Underpromotion: http://www.stmintz.com/ccc/index.php?id=366606
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk w - - 0 1",
	// Enpassant: http://www.10x8.net/chess/PerfT.html
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"1rr3k1/4ppb1/2q1bnp1/1p2B1Q1/6P1/2p2P2/2P1B2R/2K4R w - - 0 1",
	"r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1",
}

func mustBoard(t *testing.T, fen string) Board {
	t.Helper()
	var b, err = NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(fen, err)
	}
	return b
}

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	var m, err = ParseMove(s)
	if err != nil {
		t.Fatal(s, err)
	}
	return m
}

// Every legal move must leave the mover's king safe, and the cheap
// board invariants must survive Apply.
func TestLegalMovesKingSafety(t *testing.T) {
	for _, fen := range testFENs {
		var b = mustBoard(t, fen)
		for _, m := range b.LegalMoves() {
			var next = b.Apply(m)
			if next.InCheck(b.Turn()) {
				t.Error(fen, m, "leaves king in check")
			}
			if next.Turn() == b.Turn() {
				t.Error(fen, m, "turn did not flip")
			}
		}
	}
}

func TestFoolsMate(t *testing.T) {
	var b = NewBoard()
	for _, s := range []string{"f2 f3", "e7 e5", "g2 g4"} {
		var res = b.PlayMove(mustMove(t, s))
		if res.Kind != Continuing {
			t.Fatal(s, res.Kind)
		}
		b = res.Board
	}
	var res = b.PlayMove(mustMove(t, "d8 h4"))
	if res.Kind != Victory || res.Winner != Black {
		t.Fatal("expected Black victory, got", res.Kind, res.Winner)
	}
}

func TestStalemate(t *testing.T) {
	// Black king in the corner with no moves and no check.
	var b = mustBoard(t, "8/8/8/8/8/2K5/1R6/k7 b - - 0 1")
	if len(b.LegalMoves()) != 0 {
		t.Fatal("expected no legal moves", b.LegalMoves())
	}
	if b.InCheck(Black) {
		t.Fatal("position should not be check")
	}
	var res = b.PlayMove(mustMove(t, "a1 a2"))
	if res.Kind != Stalemate {
		t.Fatal("expected stalemate, got", res.Kind)
	}
}

func TestCheckmateDetectedBeforeMove(t *testing.T) {
	// Back-rank mate already on the board: any move loses for Black.
	var b = mustBoard(t, "R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1")
	var res = b.PlayMove(mustMove(t, "g8 h8"))
	if res.Kind != Victory || res.Winner != White {
		t.Fatal("expected White victory, got", res.Kind, res.Winner)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	var tests = []struct {
		fen          string
		insufficient bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/2N1K1N1 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/2B1K1B1 w - - 0 1", true},
		{"4kb2/8/8/8/8/8/8/2N1K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/1NB1K3 w - - 0 1", false}, // mixed minors
		{"4k3/8/8/8/8/8/8/NNN1K3 w - - 0 1", false}, // three knights
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/3RK3 w - - 0 1", false},
	}
	for _, test := range tests {
		var b = mustBoard(t, test.fen)
		var res = b.PlayMove(MovePiece(SquareE1, SquareF1))
		var got = res.Kind == Stalemate
		if got != test.insufficient {
			t.Error(test.fen, "insufficient =", got)
		}
	}
}

// A capture that strips both sides below mating material ends the game
// even though legal moves remain.
func TestInsufficientMaterialDuringPlay(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/8/8/8/2b5/1B2K3 w - - 0 1")
	var res = b.PlayMove(MovePiece(SquareB1, SquareC2))
	if res.Kind != Stalemate {
		t.Fatal("expected stalemate after trading down, got", res.Kind)
	}
}

func TestEnPassantWindow(t *testing.T) {
	var b = NewBoard()
	for _, s := range []string{"e2 e4", "a7 a6", "e4 e5", "d7 d5"} {
		b = b.Apply(mustMove(t, s))
	}
	if b.EnPassantTarget() != SquareD6 {
		t.Fatal("expected en passant target d6, got", b.EnPassantTarget())
	}
	var capture = MovePiece(SquareE5, SquareD6)
	if !containsMove(b.LegalMoves(), capture) {
		t.Fatal("en passant capture not generated")
	}

	var next = b.Apply(capture)
	if p, ok := next.Piece(SquareD5); ok {
		t.Fatal("captured pawn still on d5:", p)
	}
	if p, _ := next.Piece(SquareD6); p.Type != Pawn || p.Color != White {
		t.Fatal("capturing pawn not on d6")
	}

	// The window closes after one ply.
	b = b.Apply(mustMove(t, "g1 f3")).Apply(mustMove(t, "g8 f6"))
	if b.EnPassantTarget() != SquareNone {
		t.Fatal("en passant target survived", b.EnPassantTarget())
	}
	if containsMove(b.LegalMoves(), capture) {
		t.Fatal("stale en passant capture generated")
	}
}

func TestCastling(t *testing.T) {
	var tests = []struct {
		fen     string
		move    Move
		legal   bool
		comment string
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", CastleKingSide, true, "clear kingside"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", CastleQueenSide, true, "clear queenside"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", CastleKingSide, true, "black kingside"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", CastleKingSide, false, "no rights"},
		{"r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", CastleKingSide, false, "f1 occupied"},
		{"r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1", CastleKingSide, false, "f1 attacked"},
		{"r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1", CastleKingSide, false, "in check"},
		{"r3k2r/8/8/8/8/1r6/8/R3K2R w KQkq - 0 1", CastleQueenSide, true, "b1 attacked only"},
		{"r3k2r/8/8/8/8/3r4/8/R3K2R w KQkq - 0 1", CastleQueenSide, false, "d1 attacked"},
	}
	for _, test := range tests {
		var b = mustBoard(t, test.fen)
		var got = containsMove(b.LegalMoves(), test.move)
		if got != test.legal {
			t.Error(test.comment, "legal =", got)
		}
	}
}

func TestCastleExecution(t *testing.T) {
	var b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var next = b.Apply(CastleKingSide)
	if p, _ := next.Piece(SquareG1); p.Type != King {
		t.Error("king not on g1")
	}
	if p, _ := next.Piece(SquareF1); p.Type != Rook {
		t.Error("rook not on f1")
	}
	if next.CastleRights()&(WhiteKingSide|WhiteQueenSide) != 0 {
		t.Error("white rights not revoked")
	}
	if next.CastleRights()&(BlackKingSide|BlackQueenSide) == 0 {
		t.Error("black rights lost")
	}

	next = b.Apply(CastleQueenSide)
	if p, _ := next.Piece(SquareC1); p.Type != King {
		t.Error("king not on c1")
	}
	if p, _ := next.Piece(SquareD1); p.Type != Rook {
		t.Error("rook not on d1")
	}
}

func TestCastleRightsRevocation(t *testing.T) {
	var b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	var next = b.Apply(mustMove(t, "e1 e2"))
	if next.CastleRights()&(WhiteKingSide|WhiteQueenSide) != 0 {
		t.Error("king move kept white rights")
	}

	next = b.Apply(mustMove(t, "h1 h2"))
	if next.CastleRights()&WhiteKingSide != 0 {
		t.Error("h-rook move kept kingside right")
	}
	if next.CastleRights()&WhiteQueenSide == 0 {
		t.Error("h-rook move revoked queenside right")
	}

	// Capturing a rook revokes the opponent's right on that wing.
	next = b.Apply(MovePiece(SquareA1, SquareA8))
	if next.CastleRights()&BlackQueenSide != 0 {
		t.Error("a8 capture kept black queenside right")
	}
}

func TestPromotion(t *testing.T) {
	var b = mustBoard(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	var moves = b.LegalMoves()
	for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
		if !containsMove(moves, MovePromotion(SquareA7, SquareA8, pt)) {
			t.Error("missing promotion to", pt)
		}
	}
	if containsMove(moves, MovePiece(SquareA7, SquareA8)) {
		t.Error("bare pawn push to last rank generated")
	}

	var next = b.Apply(MovePromotion(SquareA7, SquareA8, Queen))
	if p, _ := next.Piece(SquareA8); p.Type != Queen || p.Color != White {
		t.Error("promotion piece not placed")
	}
}

func TestResign(t *testing.T) {
	var b = NewBoard()
	var res = b.PlayMove(Resign)
	if res.Kind != Victory || res.Winner != Black {
		t.Error("white resignation should hand Black the win, got", res.Kind, res.Winner)
	}
	res = b.Apply(mustMove(t, "e2 e4")).PlayMove(Resign)
	if res.Kind != Victory || res.Winner != White {
		t.Error("black resignation should hand White the win, got", res.Kind, res.Winner)
	}
}

// PlayMove must reject junk without panicking, whatever the move.
func TestPlayMoveTotality(t *testing.T) {
	var b = NewBoard()
	var junk = []Move{
		MovePiece(SquareE2, SquareE5),
		MovePiece(SquareE7, SquareE5), // enemy piece
		MovePiece(SquareE4, SquareE5), // empty square
		MovePiece(SquareA1, SquareA1),
		MovePromotion(SquareE2, SquareE4, Queen),
		{Kind: NormalMove, From: SquareNone, To: SquareNone},
	}
	for _, m := range junk {
		var res = b.PlayMove(m)
		if res.Kind != IllegalMove {
			t.Error(m, "accepted:", res.Kind)
		}
	}
}

func TestHalfmoveClock(t *testing.T) {
	var b = NewBoard()
	b = b.Apply(mustMove(t, "g1 f3"))
	if b.HalfmoveClock() != 1 {
		t.Error("knight move should tick the clock, got", b.HalfmoveClock())
	}
	b = b.Apply(mustMove(t, "e7 e5"))
	if b.HalfmoveClock() != 0 {
		t.Error("pawn move should reset the clock, got", b.HalfmoveClock())
	}
	b = b.Apply(mustMove(t, "f3 e5"))
	if b.HalfmoveClock() != 0 {
		t.Error("capture should reset the clock, got", b.HalfmoveClock())
	}
	if b.FullMove() != 2 {
		t.Error("fullmove number, got", b.FullMove())
	}
}
