package cmd

import (
	"fmt"

	"github.com/castware/podcastindex-go/pkg/config"
	"github.com/castware/podcastindex-go/podcastindex"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search podcast feeds by term",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("max", "m", 10, "maximum number of results")
	searchCmd.Flags().Bool("fulltext", false, "return full text in the description field")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	client := newClient(cfg)

	max, _ := cmd.Flags().GetInt("max")
	fulltext, _ := cmd.Flags().GetBool("fulltext")

	resp, err := client.Search(cmd.Context(), args[0], podcastindex.SearchOptions{
		Max:      max,
		FullText: fulltext,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d feeds for %q\n\n", resp.Count, args[0])
	for _, feed := range resp.Feeds {
		fmt.Fprintf(out, "%10d  %s\n", feed.ID, feed.Title)
		if feed.Author != "" {
			fmt.Fprintf(out, "            by %s\n", feed.Author)
		}
		fmt.Fprintf(out, "            %s\n", feed.URL)
	}
	return nil
}

// newClient builds a client from the loaded configuration.
func newClient(cfg *config.Config) *podcastindex.Client {
	return podcastindex.NewClient(podcastindex.Config{
		APIKey:    cfg.Client.APIKey,
		APISecret: cfg.Client.APISecret,
		BaseURL:   cfg.Client.BaseURL,
		UserAgent: cfg.Client.UserAgent,
		Timeout:   cfg.Client.Timeout,
	})
}
