package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored character",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := newClient().DeleteCharacter(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := newClient().ClearCharacters(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear characters: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
