package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/services/league"
)

func newMatchupsCmd() *cobra.Command {
	var (
		players    []string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "matchups",
		Short: "List every possible game for a group of players",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := model.ParseFormat(formatName)
			if err != nil {
				return err
			}

			matchups, err := league.Matchups(players, format)
			if err != nil {
				return err
			}

			if cfg.JSON {
				NewOutput(true).Print(matchups)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "There are %d possible games.\n", len(matchups))
			for _, m := range matchups {
				fmt.Fprintf(out, "%s vs. %s\n",
					strings.Join(m.SideA, " & "), strings.Join(m.SideB, " & "))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&players, "players", "p", nil, "Player names (required)")
	cmd.Flags().StringVarP(&formatName, "type", "t", "doubles", "Game type: singles, doubles")
	_ = cmd.MarkFlagRequired("players")

	return cmd
}
