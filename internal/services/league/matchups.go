package league

import (
	"github.com/paddleclub/ladder/internal/model"
)

// Matchup is one possible pairing. Each side holds one name for singles and
// two for doubles.
type Matchup struct {
	SideA []string
	SideB []string
}

// Matchups generates every possible game between the given players: all
// pairs for singles, all pairings of disjoint two-player teams for doubles.
func Matchups(players []string, f model.Format) ([]Matchup, error) {
	switch f {
	case model.FormatSingles:
		if len(players) < 2 {
			return nil, &model.ValidationError{Field: "players", Value: len(players), Want: "at least 2 for singles"}
		}
	case model.FormatDoubles:
		if len(players) < 4 {
			return nil, &model.ValidationError{Field: "players", Value: len(players), Want: "at least 4 for doubles"}
		}
	default:
		return nil, &model.ValidationError{Field: "format", Value: string(f), Want: "singles or doubles"}
	}

	seen := make(map[model.PlayerKey]bool, len(players))
	for _, name := range players {
		key := model.KeyFor(name)
		if seen[key] {
			return nil, &model.ValidationError{Field: "players", Value: name, Want: "distinct names"}
		}
		seen[key] = true
	}

	if f == model.FormatSingles {
		var matchups []Matchup
		for i := 0; i < len(players); i++ {
			for j := i + 1; j < len(players); j++ {
				matchups = append(matchups, Matchup{
					SideA: []string{players[i]},
					SideB: []string{players[j]},
				})
			}
		}
		return matchups, nil
	}

	// Doubles: enumerate all two-player teams, then all team pairs that
	// share no player
	var teams [][]string
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			teams = append(teams, []string{players[i], players[j]})
		}
	}

	var matchups []Matchup
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			if disjoint(teams[i], teams[j]) {
				matchups = append(matchups, Matchup{SideA: teams[i], SideB: teams[j]})
			}
		}
	}
	return matchups, nil
}

func disjoint(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if model.KeyFor(x) == model.KeyFor(y) {
				return false
			}
		}
	}
	return true
}
