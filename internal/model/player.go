package model

import (
	"sort"
	"strings"
	"time"
)

// InitialRating is the rating assigned to a newly created player. It is also
// the replay baseline during retroactive reinsertion.
const InitialRating = 1400.0

// PlayerKey is a player's case-insensitive identity within a leaderboard
type PlayerKey string

// KeyFor derives the PlayerKey for a display name
func KeyFor(name string) PlayerKey {
	return PlayerKey(strings.ToLower(strings.TrimSpace(name)))
}

// Player is one participant's persistent rating state and chronological
// game history
type Player struct {
	Name      string
	Rating    float64
	Wins      int
	Losses    int
	Games     []GameRecord // always sorted ascending by date
	CreatedAt time.Time
}

// NewPlayer creates a player at the initial rating
func NewPlayer(name string, now time.Time) *Player {
	return &Player{
		Name:      strings.TrimSpace(name),
		Rating:    InitialRating,
		CreatedAt: now,
	}
}

// Key returns the player's case-insensitive identity key
func (p *Player) Key() PlayerKey {
	return KeyFor(p.Name)
}

// TotalPlayed returns the number of decided games the player has been in
func (p *Player) TotalPlayed() int {
	return p.Wins + p.Losses
}

// AddGame appends a record to the game log and restores date order
func (p *Player) AddGame(rec GameRecord) {
	p.Games = append(p.Games, rec)
	sort.SliceStable(p.Games, func(i, j int) bool {
		return p.Games[i].Date.Before(p.Games[j].Date)
	})
}

// GamesOn counts real matches (decay entries excluded) logged on the same
// local calendar day as the given time
func (p *Player) GamesOn(day time.Time) int {
	count := 0
	for _, g := range p.Games {
		if g.Kind == GameMatch && sameDay(g.Date, day) {
			count++
		}
	}
	return count
}

// LastGame returns the date of the most recent log entry, or the zero time
// for a player with no games. Decay entries count as activity so a gap is
// only penalized once.
func (p *Player) LastGame() time.Time {
	if len(p.Games) == 0 {
		return time.Time{}
	}
	return p.Games[len(p.Games)-1].Date
}

// WonGame reports whether the player was the winner of the given record
func (p *Player) WonGame(rec GameRecord) bool {
	return KeyFor(rec.Winner) == p.Key()
}

// RecentForm renders the player's last n matches as a win/loss sequence,
// most recent first. Decay entries are skipped.
func (p *Player) RecentForm(n int) string {
	var sb strings.Builder
	for i := len(p.Games) - 1; i >= 0 && sb.Len() < n; i-- {
		g := p.Games[i]
		if g.Kind != GameMatch {
			continue
		}
		if p.WonGame(g) {
			sb.WriteByte('W')
		} else {
			sb.WriteByte('L')
		}
	}
	return sb.String()
}

// Clone returns a deep copy, so borrowed players can be mutated without
// aliasing stored state
func (p *Player) Clone() *Player {
	cp := *p
	cp.Games = make([]GameRecord, len(p.Games))
	copy(cp.Games, p.Games)
	return &cp
}

// ByRating is the ranking comparator: rating descending, ties broken by
// folded name ascending so equal ratings still order deterministically
func ByRating(a, b *Player) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.Key() < b.Key()
}

// SortPlayers orders a roster for ranking using ByRating
func SortPlayers(players []*Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return ByRating(players[i], players[j])
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
