package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listOpts ListOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listOpts.Limit, "limit", 0, "Maximum number of characters (0 for all)")
	listCmd.Flags().StringVar(&listOpts.Race, "race", "", "Only list this race, e.g. Elfo")
	listCmd.Flags().StringVar(&listOpts.Class, "class", "", "Only list this class, e.g. Mago")
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	characters, err := newClient().ListCharacters(ctx, listOpts)
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Found %d characters:\n", len(characters))
	for _, c := range characters {
		printCharacterLine(w, c)
	}
	return nil
}
