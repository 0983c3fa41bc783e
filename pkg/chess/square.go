package chess

import "fmt"

// Square addresses one of the 64 board squares. A1 is 0, H8 is 63.
type Square int

const SquareNone Square = -1

const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func MakeSquare(file, rank int) Square {
	return Square((rank << 3) | file)
}

func (sq Square) File() int {
	return int(sq) & 7
}

func (sq Square) Rank() int {
	return int(sq) >> 3
}

func (sq Square) IsValid() bool {
	return sq >= 0 && sq < 64
}

// offset returns the square shifted by the given file and rank deltas,
// or SquareNone if the result falls off the board.
func (sq Square) offset(df, dr int) Square {
	var file = sq.File() + df
	var rank = sq.Rank() + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string(fileNames[sq.File()]) + string(rankNames[sq.Rank()])
}

// ParseSquare parses two-character algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("invalid square %q", s)
	}
	var file = int(s[0] - 'a')
	var rank = int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone, fmt.Errorf("invalid square %q", s)
	}
	return MakeSquare(file, rank), nil
}

func FlipSquare(sq Square) Square {
	return sq ^ 56
}

func absDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func FileDistance(sq1, sq2 Square) int {
	return absDelta(sq1.File(), sq2.File())
}

func RankDistance(sq1, sq2 Square) int {
	return absDelta(sq1.Rank(), sq2.Rank())
}

// SquareDistance is the Chebyshev distance between two squares.
func SquareDistance(sq1, sq2 Square) int {
	var fd = FileDistance(sq1, sq2)
	var rd = RankDistance(sq1, sq2)
	if fd > rd {
		return fd
	}
	return rd
}
