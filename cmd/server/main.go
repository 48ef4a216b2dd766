// Package main is the entry point for the rpg-chargen HTTP server and client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-chargen",
	Short: "RPG character generator and dice roller",
	Long:  `rpg-chargen serves an HTTP API that generates random RPG characters, rolls dice and stores characters.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
