package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

var (
	repairAddr  string
	repairDB    int
	repairApply bool
)

var repairCmd = &cobra.Command{
	Use:   "repair-redis",
	Short: "Check the Redis character store for corrupted or unindexed data",
	Long: `Scan every character hash and the ID index in Redis.

Without --fix the command only reports problems. With --fix corrupted
characters are deleted and the index is rebuilt to match the stored hashes.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairAddr, "redis-addr", "localhost:6379", "Redis address")
	repairCmd.Flags().IntVar(&repairDB, "redis-db", 0, "Redis database index")
	repairCmd.Flags().BoolVar(&repairApply, "fix", false, "Apply repairs")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, _ []string) error {
	client, err := redis.NewClient(repairAddr, &redis.Options{DB: repairDB})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := redis.Ping(ctx, client); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Connected to Redis: %s\n", repairAddr)
	fmt.Fprintf(w, "Scanning for corrupted character data...\n")

	report, err := characterrepo.CheckRedis(ctx, client, repairApply)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nChecked %d characters\n", report.Checked)
	if report.Clean() {
		fmt.Fprintf(w, "No corrupted data found!\n")
		return nil
	}

	for _, key := range report.Corrupted {
		fmt.Fprintf(w, "  ✗ corrupted JSON in %s\n", key)
	}
	for _, id := range report.Orphaned {
		fmt.Fprintf(w, "  ✗ index entry %d has no character\n", id)
	}
	for _, id := range report.Unindexed {
		fmt.Fprintf(w, "  ✗ character %d is missing from the index\n", id)
	}

	if report.Repaired {
		fmt.Fprintf(w, "\nCleanup complete!\n")
	} else {
		fmt.Fprintf(w, "\nRun again with --fix to repair\n")
	}
	return nil
}
