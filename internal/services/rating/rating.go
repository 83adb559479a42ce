package rating

import (
	"math"

	"github.com/paddleclub/ladder/internal/model"
)

// Sensitivity is the rating-difference scale for win probability. A player
// rated Sensitivity points above their opponent has 10-to-1 odds. The classic
// Elo value is 400; this league runs a deliberately narrower 150 so the small
// rating gaps typical of an office ladder still move expectations.
const Sensitivity = 150.0

// Margin-of-victory curve parameters. The asymptote term keeps blowouts
// against much weaker opponents from paying out full value.
const (
	asymptote    = 2.2
	gapScale     = 0.005
	minGapFactor = 1e-3
)

// K-factors per format. Doubles is halved to damp an individual's swing when
// a teammate also contributed to the outcome.
const (
	KSingles = 10.0
	KDoubles = 5.0
)

// WinProbability computes the chance that a player rated a beats a player
// rated b. WinProbability(a, b) + WinProbability(b, a) == 1.
func WinProbability(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, -(a-b)/Sensitivity))
}

// MarginMultiplier scales a rating delta by how lopsided the score was.
// The curve is logarithmic in the point difference, base e for singles and
// base 10 for doubles (doubles compresses growth to damp partner-skill
// variance), and shrinks as the winner's rating lead over the loser grows.
func MarginMultiplier(winnerRating, loserRating float64, pointDiff int, f model.Format) float64 {
	base := math.E
	if f == model.FormatDoubles {
		base = 10
	}
	gap := (winnerRating-loserRating)*gapScale + asymptote
	if gap < minGapFactor {
		gap = minGapFactor
	}
	pd := math.Abs(float64(pointDiff))
	return math.Log10(pd+1) / math.Log10(base) * (asymptote / gap)
}

// KFactor returns the maximum per-match rating swing for a format
func KFactor(f model.Format) float64 {
	if f == model.FormatDoubles {
		return KDoubles
	}
	return KSingles
}

// Deltas computes the winner's and loser's rating adjustments for one match.
// Both share the margin multiplier but use their own expectation terms, so
// the magnitudes are not forced symmetric.
func Deltas(winnerRating, loserRating float64, pointDiff int, f model.Format) (winnerDelta, loserDelta float64) {
	k := KFactor(f)
	mult := MarginMultiplier(winnerRating, loserRating, pointDiff, f)
	winnerDelta = k * mult * (1 - WinProbability(winnerRating, loserRating))
	loserDelta = k * mult * (0 - WinProbability(loserRating, winnerRating))
	return winnerDelta, loserDelta
}
