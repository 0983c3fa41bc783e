package arena

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/thunderchess/thunder/internal/storage"
)

// collectResults is the single consumer of finished games: it records
// each game (which also updates both engines' ratings) and logs the
// running score from engine A's point of view.
func (a *Arena) collectResults(ctx context.Context, gameResults <-chan gameResult) error {
	var games = 0
	var wins, losses, draws int
	for res := range gameResults {
		games++
		log.Printf("Finished game %v: %v {%v, %v plies}\n",
			res.gameInfo.gameNumber,
			gameResultString(res.result),
			res.comment, res.plies)

		if res.result == gameResultDraw {
			draws++
		} else if res.result == gameResultWhiteWins && res.gameInfo.whiteID == a.engineAID ||
			res.result == gameResultBlackWins && res.gameInfo.blackID == a.engineAID {
			wins++
		} else {
			losses++
		}

		var _, err = a.Store.RecordGame(storage.GameRecord{
			WhiteID:  res.gameInfo.whiteID,
			BlackID:  res.gameInfo.blackID,
			FinalFEN: res.finalFEN,
			Status:   gameStatus(res.result),
			PlayedAt: time.Now(),
		})
		if err != nil {
			return err
		}

		var stat = computeStat(wins, losses, draws)
		log.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			wins, losses, draws, stat.winningFraction, games)
		log.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.eloDifference, stat.los*100)
	}
	return ctx.Err()
}

type gameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

//https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) gameStatistics {
	var games = wins + losses + draws
	var winning_fraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var elo_difference = -math.Log(1/winning_fraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return gameStatistics{
		winningFraction: winning_fraction,
		eloDifference:   elo_difference,
		los:             los,
	}
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}

func gameStatus(v int) string {
	if v == gameResultWhiteWins {
		return storage.StatusWhiteWins
	}
	if v == gameResultBlackWins {
		return storage.StatusBlackWins
	}
	return storage.StatusDraw
}
