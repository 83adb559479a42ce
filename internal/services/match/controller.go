package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/paddleclub/ladder/internal/dependencies/clock"
	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/services/rating"
	"github.com/paddleclub/ladder/internal/storage"
)

const (
	// DailyMatchCap is the most rated matches a player may log per calendar day
	DailyMatchCap = 3

	// DecayAfter is the inactivity window before a player starts losing points
	DecayAfter = 7 * 24 * time.Hour

	// DecayPenalty is the rating cost of one decay sweep hit
	DecayPenalty = 10.0

	// BackdateLimit is how far in the past a retroactive match may be dated
	BackdateLimit = 7 * 24 * time.Hour
)

// Controller applies match reports to the leaderboard: it computes rating
// deltas, updates game logs, runs the inactivity decay sweep, and handles
// retroactive reinsertion. All mutation is staged on copies and persisted in
// one atomic roster swap, so a failed report leaves no partial state.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Outcome describes what one processed report did
type Outcome struct {
	// Winner and Loser are the post-update player records
	Winner *model.Player
	Loser  *model.Player

	// Deltas applied by the reported match itself
	WinnerDelta float64
	LoserDelta  float64

	// WinProbability is the winner's pre-match expected chance of winning
	WinProbability float64
	// Multiplier is the margin-of-victory multiplier that scaled the deltas
	Multiplier float64

	// Decayed lists players hit by inactivity sweeps during this report
	Decayed []string
	// Replayed is how many existing games were dated after a backdated
	// match and re-run behind it (retroactive mode only)
	Replayed int
}

// roster is the working copy of every player, mutated freely and persisted
// only once the whole report has succeeded
type roster map[model.PlayerKey]*model.Player

// Report validates and applies one match report. Every contract violation is
// detected before any player record changes.
func (c *Controller) Report(ctx context.Context, report model.MatchReport) (*Outcome, error) {
	if report.Format == model.FormatDoubles {
		// No agreed rule yet for splitting a team result into individual
		// rating changes, so doubles reports are refused rather than guessed.
		return nil, model.ErrFormatUnsupported
	}
	if report.Format != model.FormatSingles {
		return nil, &model.ValidationError{Field: "format", Value: string(report.Format), Want: "singles"}
	}
	if model.KeyFor(report.Winner) == model.KeyFor(report.Loser) {
		return nil, model.ErrSamePlayer
	}

	playedAt := report.PlayedAt
	if playedAt.IsZero() {
		playedAt = c.clock.Now()
	}

	if report.Retroactive && c.clock.Now().Sub(playedAt) > BackdateLimit {
		return nil, fmt.Errorf("backdate %s: %w",
			playedAt.Format(time.DateOnly), model.ErrStaleBackdate)
	}

	rec, err := model.NewGameRecord(report.Winner, report.Loser, report.PointDiff, playedAt)
	if err != nil {
		return nil, err
	}

	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	r := make(roster, len(players))
	for _, p := range players {
		r[p.Key()] = p
	}

	if _, ok := r[model.KeyFor(report.Winner)]; !ok {
		return nil, fmt.Errorf("winner %q: %w", report.Winner, model.ErrPlayerNotFound)
	}
	if _, ok := r[model.KeyFor(report.Loser)]; !ok {
		return nil, fmt.Errorf("loser %q: %w", report.Loser, model.ErrPlayerNotFound)
	}

	var outcome *Outcome
	if report.Retroactive {
		outcome, err = c.reinsert(r, rec, report.Format)
	} else {
		outcome, err = c.apply(r, rec, report.Format, true)
	}
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, r); err != nil {
		return nil, err
	}

	c.logger.Info("match recorded",
		slog.String("winner", outcome.Winner.Name),
		slog.String("loser", outcome.Loser.Name),
		slog.Int("point_diff", rec.PointDiff),
		slog.Float64("winner_delta", outcome.WinnerDelta),
		slog.Float64("loser_delta", outcome.LoserDelta),
		slog.Bool("retroactive", report.Retroactive),
	)

	return outcome, nil
}

// apply runs the core pipeline for one match against the working roster:
// throttle check, deltas, log append, counters, then the decay sweep dated
// at the match time.
func (c *Controller) apply(r roster, rec model.GameRecord, f model.Format, throttle bool) (*Outcome, error) {
	winner := r[model.KeyFor(rec.Winner)]
	loser := r[model.KeyFor(rec.Loser)]

	if throttle {
		for _, p := range []*model.Player{winner, loser} {
			if p.GamesOn(rec.Date) >= DailyMatchCap {
				return nil, fmt.Errorf("%s has played %d games today: %w",
					p.Name, p.GamesOn(rec.Date), model.ErrDailyCap)
			}
		}
	}

	expected := rating.WinProbability(winner.Rating, loser.Rating)
	mult := rating.MarginMultiplier(winner.Rating, loser.Rating, rec.PointDiff, f)
	winnerDelta, loserDelta := rating.Deltas(winner.Rating, loser.Rating, rec.PointDiff, f)

	winner.AddGame(rec)
	loser.AddGame(rec)

	winner.Rating += winnerDelta
	winner.Wins++
	loser.Rating += loserDelta
	loser.Losses++

	decayed := c.sweep(r, rec.Date)

	return &Outcome{
		Winner:         winner,
		Loser:          loser,
		WinnerDelta:    winnerDelta,
		LoserDelta:     loserDelta,
		WinProbability: expected,
		Multiplier:     mult,
		Decayed:        decayed,
	}, nil
}

// sweep penalizes every player whose last activity is more than DecayAfter
// before the given time. The synthetic decay entry advances their last-game
// date, so one gap costs exactly one penalty.
func (c *Controller) sweep(r roster, at time.Time) []string {
	var decayed []string
	for _, p := range r {
		last := p.LastGame()
		if last.IsZero() {
			continue // never played, nothing to decay from
		}
		if at.Sub(last) > DecayAfter {
			p.Rating -= DecayPenalty
			p.AddGame(model.NewDecayRecord(at))
			decayed = append(decayed, p.Name)
		}
	}
	sort.Strings(decayed)
	return decayed
}

// reinsert handles a backdated match: the whole leaderboard is rebuilt by
// replaying every recorded match, with the new one slotted into true
// chronological order. Decay entries are regenerated by the replay sweeps
// rather than carried over. The daily cap is not enforced during replay.
func (c *Controller) reinsert(r roster, rec model.GameRecord, f model.Format) (*Outcome, error) {
	replay := collectMatches(r)
	laterGames := 0
	for _, g := range replay {
		if g.Date.After(rec.Date) {
			laterGames++
		}
	}
	replay = append(replay, rec)
	sort.SliceStable(replay, func(i, j int) bool {
		return replay[i].Date.Before(replay[j].Date)
	})

	for _, p := range r {
		p.Rating = model.InitialRating
		p.Wins = 0
		p.Losses = 0
		p.Games = nil
	}

	var outcome *Outcome
	var decayed []string
	for _, game := range replay {
		res, err := c.apply(r, game, f, false)
		if err != nil {
			return nil, fmt.Errorf("replay %s vs %s on %s: %w",
				game.Winner, game.Loser, game.Date.Format(time.DateOnly), err)
		}
		decayed = append(decayed, res.Decayed...)
		if game == rec {
			outcome = res
		}
	}

	// Re-point the outcome at the final records and fold in all sweep hits
	outcome.Winner = r[model.KeyFor(rec.Winner)]
	outcome.Loser = r[model.KeyFor(rec.Loser)]
	outcome.Decayed = dedupe(decayed)
	outcome.Replayed = laterGames
	return outcome, nil
}

// collectMatches gathers every real match in the roster exactly once. A
// match is logged by both participants; taking only the winner-side copy
// yields one entry per game without collapsing identical rematches.
func collectMatches(r roster) []model.GameRecord {
	keys := make([]model.PlayerKey, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var matches []model.GameRecord
	for _, k := range keys {
		for _, g := range r[k].Games {
			if g.Kind == model.GameMatch && model.KeyFor(g.Winner) == k {
				matches = append(matches, g)
			}
		}
	}
	return matches
}

func (c *Controller) persist(ctx context.Context, r roster) error {
	players := make([]*model.Player, 0, len(r))
	for _, p := range r {
		players = append(players, p)
	}
	return c.storage.ReplaceAll(ctx, players)
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
