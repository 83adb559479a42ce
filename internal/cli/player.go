package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/services/league"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerFindCmd())
	cmd.AddCommand(newPlayerShowCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Create a new player at the base rating",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := title(strings.Join(args, " "))
			player, err := app.League.CreatePlayer(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.JSON)
			if cfg.JSON {
				out.Print(player)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s at rating %.0f\n", player.Name, player.Rating)
			}
			return nil
		},
	}
}

func newPlayerFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find QUERY",
		Short: "List players whose name contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := app.League.FindByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if cfg.JSON {
				NewOutput(true).Print(found)
				return nil
			}

			if len(found) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No player matches %q\n", args[0])
				return nil
			}
			for _, p := range found {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (rating %.2f, %d-%d)\n",
					p.Name, p.Rating, p.Wins, p.Losses)
			}
			return nil
		},
	}
}

func newPlayerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one player's record and game log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.League.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if cfg.JSON {
				NewOutput(true).Print(player)
				return nil
			}

			rank, err := app.League.Rank(cmd.Context(), player.Name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s), rating %.2f, %d-%d, form %s\n",
				player.Name, league.Ordinal(rank), player.Rating,
				player.Wins, player.Losses, player.RecentForm(5))
			for _, g := range player.Games {
				date := g.Date.Format("2006-01-02")
				if g.Kind != model.GameMatch {
					fmt.Fprintf(out, "  %s  inactivity decay\n", date)
					continue
				}
				fmt.Fprintf(out, "  %s  %s beat %s by %d\n", date, g.Winner, g.Loser, g.PointDiff)
			}
			return nil
		},
	}
}
