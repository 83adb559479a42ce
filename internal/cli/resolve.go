package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paddleclub/ladder/internal/model"
)

// resolvePlayer turns a user-typed name fragment into exactly one player,
// interactively: multiple matches get a numbered pick list, no match offers
// to create a new record. The library itself never prompts; this is the
// out-of-band resolver the core contracts assume.
func resolvePlayer(cmd *cobra.Command, query string) (*model.Player, error) {
	ctx := cmd.Context()
	found, err := app.League.FindByName(ctx, query)
	if err != nil {
		return nil, err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		fmt.Fprintf(out, "No player record matches %q.\n", query)
		fmt.Fprint(out, "Enter a full name to create a new player, or press Enter to abort: ")
		name, err := readLine(in)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("resolve %q: %w", query, model.ErrPlayerNotFound)
		}
		return app.League.CreatePlayer(ctx, title(name))
	default:
		fmt.Fprintf(out, "Found more than one player matching %q:\n", query)
		for i, p := range found {
			fmt.Fprintf(out, "  %d -- %s\n", i, p.Name)
		}
		fmt.Fprint(out, "Enter the number of the player you meant: ")
		line, err := readLine(in)
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 0 || idx >= len(found) {
			return nil, &model.ValidationError{
				Field: "selection",
				Value: line,
				Want:  fmt.Sprintf("a number from 0 to %d", len(found)-1),
			}
		}
		return found[idx], nil
	}
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// title canonicalizes a new player's display name ("aryan jain" -> "Aryan Jain")
func title(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
