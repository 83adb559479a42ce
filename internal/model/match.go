package model

import "time"

// Format distinguishes singles and doubles play
type Format string

const (
	FormatSingles Format = "singles"
	FormatDoubles Format = "doubles"
)

// ParseFormat converts a user-supplied format string
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSingles:
		return FormatSingles, nil
	case FormatDoubles:
		return FormatDoubles, nil
	default:
		return "", &ValidationError{Field: "format", Value: s, Want: "singles or doubles"}
	}
}

// Point-difference bounds for a valid paddle game. 21 is a maximal skunk win.
const (
	MinPointDiff = 2
	MaxPointDiff = 21
)

// GameKind tags entries in a player's game log
type GameKind string

const (
	// GameMatch is a real recorded match
	GameMatch GameKind = "match"
	// GameDecay is a synthetic entry marking an inactivity penalty
	GameDecay GameKind = "decay"
)

// GameRecord is one entry in a player's chronological game log
type GameRecord struct {
	Winner    string
	Loser     string
	PointDiff int
	Date      time.Time
	Kind      GameKind
}

// NewGameRecord builds a match record, validating the point difference
func NewGameRecord(winner, loser string, pointDiff int, date time.Time) (GameRecord, error) {
	if pointDiff < MinPointDiff || pointDiff > MaxPointDiff {
		return GameRecord{}, pointDiffError(pointDiff)
	}
	return GameRecord{
		Winner:    winner,
		Loser:     loser,
		PointDiff: pointDiff,
		Date:      date,
		Kind:      GameMatch,
	}, nil
}

// NewDecayRecord builds a synthetic zero-information entry recording an
// inactivity penalty applied at the given sweep time
func NewDecayRecord(date time.Time) GameRecord {
	return GameRecord{Date: date, Kind: GameDecay}
}

// MatchReport is a fully resolved match outcome handed to the processor.
// Winner and Loser are canonical player names already resolved by the caller.
type MatchReport struct {
	Winner      string
	Loser       string
	PointDiff   int
	Format      Format
	PlayedAt    time.Time
	Retroactive bool
}
