package chess

import (
	"fmt"
	"strconv"
	"strings"
)

const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN serializes the position in standard Forsyth-Edwards Notation:
// placement, side to move, castling rights, en-passant target, half-move
// clock, full-move number.
func (b Board) FEN() string {
	var sb strings.Builder
	b.writePlacement(&sb)
	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(castleRightsString(b.castleRights))
	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}

// FENAt is FEN with the full-move number derived from a caller-tracked
// half-move count, for callers that number plies themselves.
func (b Board) FENAt(halfmoveNumber int) string {
	var fields = strings.Fields(b.FEN())
	fields[5] = strconv.Itoa(halfmoveNumber/2 + 1)
	return strings.Join(fields, " ")
}

// CacheKey is a canonical representation of everything that affects play
// from this position: placement, turn, castling and en-passant state. Move
// clocks are excluded so transpositions collide.
func (b Board) CacheKey() string {
	var fields = strings.Fields(b.FEN())
	return strings.Join(fields[:4], " ")
}

func (b Board) writePlacement(sb *strings.Builder) {
	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var p = b.squares[MakeSquare(file, rank)]
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Char())
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteByte('/')
		}
	}
}

func castleRightsString(rights int) string {
	if rights == 0 {
		return "-"
	}
	var sb strings.Builder
	if rights&WhiteKingSide != 0 {
		sb.WriteByte('K')
	}
	if rights&WhiteQueenSide != 0 {
		sb.WriteByte('Q')
	}
	if rights&BlackKingSide != 0 {
		sb.WriteByte('k')
	}
	if rights&BlackQueenSide != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// NewBoardFromFEN builds a board from FEN text. The half-move clock and
// full-move number fields are optional.
func NewBoardFromFEN(fen string) (Board, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 || len(tokens) > 6 {
		return Board{}, fmt.Errorf("parse fen failed %q", fen)
	}

	var builder = NewBoardBuilder()

	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("parse fen failed %q: expected 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		var rank = Rank8 - i
		var file = FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			var piece, err = parsePieceChar(ch)
			if err != nil {
				return Board{}, fmt.Errorf("parse fen failed %q: %v", fen, err)
			}
			if file > FileH {
				return Board{}, fmt.Errorf("parse fen failed %q: rank %d overflows", fen, rank+1)
			}
			builder.Piece(MakeSquare(file, rank), piece)
			file++
		}
		if file != FileH+1 {
			return Board{}, fmt.Errorf("parse fen failed %q: rank %d has %d files", fen, rank+1, file)
		}
	}

	switch tokens[1] {
	case "w":
		builder.Turn(White)
	case "b":
		builder.Turn(Black)
	default:
		return Board{}, fmt.Errorf("parse fen failed %q: bad side to move", fen)
	}

	var rights = 0
	if tokens[2] != "-" {
		for _, ch := range tokens[2] {
			switch ch {
			case 'K':
				rights |= WhiteKingSide
			case 'Q':
				rights |= WhiteQueenSide
			case 'k':
				rights |= BlackKingSide
			case 'q':
				rights |= BlackQueenSide
			default:
				return Board{}, fmt.Errorf("parse fen failed %q: bad castling rights", fen)
			}
		}
	}
	builder.CastleRights(rights)

	if tokens[3] != "-" {
		var ep, err = ParseSquare(tokens[3])
		if err != nil {
			return Board{}, fmt.Errorf("parse fen failed %q: %v", fen, err)
		}
		builder.EnPassant(ep)
	}

	if len(tokens) > 4 {
		var clock, err = strconv.Atoi(tokens[4])
		if err != nil || clock < 0 {
			return Board{}, fmt.Errorf("parse fen failed %q: bad halfmove clock", fen)
		}
		builder.HalfmoveClock(clock)
	}
	if len(tokens) > 5 {
		var fullmove, err = strconv.Atoi(tokens[5])
		if err != nil || fullmove < 1 {
			return Board{}, fmt.Errorf("parse fen failed %q: bad fullmove number", fen)
		}
		builder.FullMove(fullmove)
	}

	return builder.Build()
}
