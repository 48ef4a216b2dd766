package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
)

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Store a character read from a JSON file",
	Long:  `Store a character read from a JSON file, or from stdin when the file is "-".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer func() {
			_ = f.Close() // nolint:errcheck // read only
		}()
		r = f
	}

	var character entities.Character
	if err := json.NewDecoder(r).Decode(&character); err != nil {
		return fmt.Errorf("failed to decode character: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	saved, err := newClient().SaveCharacter(ctx, &character)
	if err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	printCharacter(cmd.OutOrStdout(), saved)
	return nil
}
