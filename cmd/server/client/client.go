// Package client provides commands that call a running rpg-chargen server
package client

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverURL string
	timeout   time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the rpg-chargen API",
	Long:  `Client commands call a running rpg-chargen server over HTTP and print readable summaries.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Generation and dice
	ClientCmd.AddCommand(randomCmd)
	ClientCmd.AddCommand(rollCmd)

	// Stored characters
	ClientCmd.AddCommand(saveCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(clearCmd)
}

func newClient() *APIClient {
	return NewAPIClient(serverURL, timeout)
}
