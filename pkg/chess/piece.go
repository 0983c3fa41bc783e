package chess

import (
	"fmt"
	"strings"
	"unicode"
)

type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

type PieceType int8

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [7]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	return pieceNames[pt]
}

// ParsePieceType accepts a full piece name ("queen") or its single-letter
// abbreviation ("q"), case-insensitively.
func ParsePieceType(s string) (PieceType, error) {
	s = strings.ToLower(s)
	for pt := Pawn; pt <= King; pt++ {
		if s == pieceNames[pt] || s == string("pnbrqk"[pt-Pawn]) {
			return pt, nil
		}
	}
	return Empty, fmt.Errorf("invalid piece %q", s)
}

// Piece is an immutable (type, color) pair. The zero value marks an
// empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Type.String()
}

// Char returns the FEN character for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Char() byte {
	var ch = "?pnbrqk"[p.Type]
	if p.Color == White {
		return byte(unicode.ToUpper(rune(ch)))
	}
	return byte(ch)
}

func parsePieceChar(ch rune) (Piece, error) {
	var i = strings.IndexRune("pnbrqk", unicode.ToLower(ch))
	if i < 0 {
		return Piece{}, fmt.Errorf("invalid piece character %q", ch)
	}
	var color = Black
	if unicode.IsUpper(ch) {
		color = White
	}
	return Piece{Type: PieceType(i) + Pawn, Color: color}, nil
}

// Fixed movement offsets as (file, rank) deltas. Sliding pieces repeat
// their deltas until blocked; knight and king apply them once.
var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookDirs      = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// pawnDir is the forward rank delta for the given color.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnStartRank(c Color) int {
	if c == White {
		return Rank2
	}
	return Rank7
}

func pawnPromotionRank(c Color) int {
	if c == White {
		return Rank8
	}
	return Rank1
}
