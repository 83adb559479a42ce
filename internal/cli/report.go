package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/services/match"
)

func newReportCmd() *cobra.Command {
	var (
		pointDiff  int
		formatName string
		dateStr    string
		retro      bool
	)

	cmd := &cobra.Command{
		Use:   "report WINNER LOSER",
		Short: "Record a match result and update ratings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := model.ParseFormat(formatName)
			if err != nil {
				return err
			}

			winner, err := resolvePlayer(cmd, args[0])
			if err != nil {
				return err
			}
			loser, err := resolvePlayer(cmd, args[1])
			if err != nil {
				return err
			}

			var playedAt time.Time
			if dateStr != "" {
				playedAt, err = time.ParseInLocation(time.DateOnly, dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", dateStr)
				}
			}

			outcome, err := app.MatchController.Report(cmd.Context(), model.MatchReport{
				Winner:      winner.Name,
				Loser:       loser.Name,
				PointDiff:   pointDiff,
				Format:      format,
				PlayedAt:    playedAt,
				Retroactive: retro,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.JSON)
			if cfg.JSON {
				out.Print(outcome)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s defeated %s by %d points (win probability %.1f%%, multiplier %.2f)\n",
					outcome.Winner.Name, outcome.Loser.Name, pointDiff,
					outcome.WinProbability*100, outcome.Multiplier)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %+.2f -> %.2f\n",
					outcome.Winner.Name, outcome.WinnerDelta, outcome.Winner.Rating)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %+.2f -> %.2f\n",
					outcome.Loser.Name, outcome.LoserDelta, outcome.Loser.Rating)
				for _, name := range outcome.Decayed {
					fmt.Fprintf(cmd.OutOrStdout(), "%s lost %.0f points to inactivity\n", name, match.DecayPenalty)
				}
				if outcome.Replayed > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "replayed %d later games to keep chronology\n", outcome.Replayed)
				}
			}

			return printStandings(cmd)
		},
	}

	cmd.Flags().IntVar(&pointDiff, "by", 0, "Winning point difference (2-21, required)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "singles", "Game format: singles, doubles")
	cmd.Flags().StringVar(&dateStr, "date", "", "Match date as YYYY-MM-DD (default: now)")
	cmd.Flags().BoolVar(&retro, "retro", false, "Backfill a past match, replaying later games in order")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}
