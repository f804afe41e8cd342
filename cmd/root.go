package cmd

import (
	"fmt"
	"os"

	"github.com/castware/podcastindex-go/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pindex",
	Short: "Podcast Index API client tools",
	Long: `pindex - command line tools for the Podcast Index API client

Search the index from the terminal and validate live API responses
against the versioned structural schemas shipped with the client.

Credentials come from ./config/settings.yaml or the environment:
  PODCASTINDEX_CLIENT_API_KEY
  PODCASTINDEX_CLIENT_API_SECRET`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing).
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig initializes configuration lazily, skipping commands that
// never read it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
