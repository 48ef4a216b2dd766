package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var saveRandom bool

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random character",
	Long: `Generate a random character. With --save the character is stored
and printed with its assigned ID.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().BoolVar(&saveRandom, "save", false, "Store the generated character")
}

func runRandom(cmd *cobra.Command, _ []string) error {
	api := newClient()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	character, err := api.RandomCharacter(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate character: %w", err)
	}

	if saveRandom {
		character, err = api.SaveCharacter(ctx, character)
		if err != nil {
			return fmt.Errorf("failed to save character: %w", err)
		}
	}

	printCharacter(cmd.OutOrStdout(), character)
	return nil
}
