// Package rating implements the pairwise ELO update applied after each
// finished game.
package rating

import "math"

// KFactor is the maximum rating movement per game.
const KFactor = 32

// Game scores from the perspective of one player.
const (
	ScoreLoss = 0.0
	ScoreDraw = 0.5
	ScoreWin  = 1.0
)

// Expected is the logistic expected score of a player rated ra against
// one rated rb: 1 / (1 + 10^((rb-ra)/400)).
func Expected(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/400))
}

// Update returns both ratings after a game with the given score for the
// first player (1 win, 0.5 draw, 0 loss).
func Update(ra, rb, score float64) (newRa, newRb float64) {
	var ea = Expected(ra, rb)
	var eb = Expected(rb, ra)
	newRa = ra + KFactor*(score-ea)
	newRb = rb + KFactor*((1-score)-eb)
	return newRa, newRb
}
