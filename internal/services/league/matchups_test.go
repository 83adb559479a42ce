package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddleclub/ladder/internal/model"
)

func TestSinglesMatchupsAreAllPairs(t *testing.T) {
	matchups, err := Matchups([]string{"Alice", "Bob", "Cara", "Dan"}, model.FormatSingles)
	require.NoError(t, err)

	// 4 choose 2
	assert.Len(t, matchups, 6)
	assert.Equal(t, []string{"Alice"}, matchups[0].SideA)
	assert.Equal(t, []string{"Bob"}, matchups[0].SideB)
}

func TestDoublesMatchupsUseDisjointTeams(t *testing.T) {
	matchups, err := Matchups([]string{"Alice", "Bob", "Cara", "Dan"}, model.FormatDoubles)
	require.NoError(t, err)

	// 3 ways to split 4 players into two teams
	require.Len(t, matchups, 3)
	for _, m := range matchups {
		require.Len(t, m.SideA, 2)
		require.Len(t, m.SideB, 2)
		seen := map[string]bool{}
		for _, name := range append(append([]string{}, m.SideA...), m.SideB...) {
			assert.False(t, seen[name], "player %s appears twice in one matchup", name)
			seen[name] = true
		}
	}
}

func TestDoublesMatchupsWithFivePlayers(t *testing.T) {
	matchups, err := Matchups([]string{"A", "B", "C", "D", "E"}, model.FormatDoubles)
	require.NoError(t, err)

	// 5 choose 4 subsets, 3 splits each
	assert.Len(t, matchups, 15)
}

func TestMatchupsValidation(t *testing.T) {
	_, err := Matchups([]string{"Alice"}, model.FormatSingles)
	assert.Error(t, err)

	_, err = Matchups([]string{"Alice", "Bob", "Cara"}, model.FormatDoubles)
	assert.Error(t, err)

	_, err = Matchups([]string{"Alice", "alice", "Bob"}, model.FormatSingles)
	assert.Error(t, err)
}
