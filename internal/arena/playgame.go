package arena

import (
	"context"
	"fmt"
	"log"

	"github.com/thunderchess/thunder/pkg/chess"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type gameInfo struct {
	gameNumber int
	white      Player
	black      Player
	whiteID    string
	blackID    string
}

type gameResult struct {
	gameInfo gameInfo
	finalFEN string
	comment  string
	plies    int
	result   int
}

// playGame runs one engine-vs-engine game to a terminal state or the
// ply cap, whichever comes first.
func playGame(ctx context.Context, info gameInfo, maxPlies int) (gameResult, error) {
	log.Printf("Started game %v\n", info.gameNumber)

	var b = chess.NewBoard()
	var plies = 0
	for {
		select {
		case <-ctx.Done():
			return gameResult{}, ctx.Err()
		default:
		}

		if plies >= maxPlies {
			return gameResult{gameInfo: info, finalFEN: b.FEN(), comment: "move limit",
				plies: plies, result: gameResultDraw}, nil
		}

		var player = info.white
		if b.Turn() == chess.Black {
			player = info.black
		}
		var move, _ = player.SelectMove(b)
		plies++

		switch res := b.PlayMove(move); res.Kind {
		case chess.Continuing:
			b = res.Board
		case chess.Victory:
			var comment = "checkmate"
			if move == chess.Resign {
				comment = "resignation"
			}
			var points = gameResultWhiteWins
			if res.Winner == chess.Black {
				points = gameResultBlackWins
			}
			return gameResult{gameInfo: info, finalFEN: res.Board.FEN(), comment: comment,
				plies: plies, result: points}, nil
		case chess.Stalemate:
			return gameResult{gameInfo: info, finalFEN: res.Board.FEN(), comment: "stalemate or low material",
				plies: plies, result: gameResultDraw}, nil
		case chess.IllegalMove:
			return gameResult{}, fmt.Errorf("game %v: %v played illegal move %v",
				info.gameNumber, player.Name(), res.Move)
		}
	}
}
