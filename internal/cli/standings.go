package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paddleclub/ladder/internal/services/league"
)

func newStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the ranked leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStandings(cmd)
		},
	}
}

func printStandings(cmd *cobra.Command) error {
	rows, err := app.League.Standings(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.JSON {
		NewOutput(true).Print(rows)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tW\tL\tPLAYED\tTODAY\tLAST GAME\tRATING\tFORM")
	for _, row := range rows {
		lastGame := "-"
		if !row.LastGame.IsZero() {
			lastGame = row.LastGame.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%.2f\t%s\n",
			league.Ordinal(row.Rank), row.Name, row.Wins, row.Losses,
			row.TotalPlayed, row.GamesToday, lastGame, row.Rating, row.Form)
	}
	return w.Flush()
}
