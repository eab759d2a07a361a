package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host      string
	sessionID string
)

var rootCmd = &cobra.Command{
	Use:   "fantasy-cli",
	Short: "A CLI to interact with the fantasy-roster server",
	Long: `A command-line interface for making requests to the various endpoints
of the fantasy-roster application: sessions, rosters, stats and the player catalog.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", os.Getenv("FANTASY_SESSION"), "The session to operate on (defaults to $FANTASY_SESSION)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
