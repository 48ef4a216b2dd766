package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  roll 1d20+5
  roll 3d6
  roll 2d8-1`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	roll, err := newClient().RollDice(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n🎲 Dice Roll Results:\n")
	fmt.Fprintf(w, "===================\n")
	fmt.Fprintf(w, "Notation: %s\n", roll.Notation)
	fmt.Fprintf(w, "Individual Dice: %v\n", roll.Rolls)
	if roll.Modifier != 0 {
		fmt.Fprintf(w, "Modifier: %+d\n", roll.Modifier)
	}
	fmt.Fprintf(w, "Total: %d\n", roll.Result)
	return nil
}
