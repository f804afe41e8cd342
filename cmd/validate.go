package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/castware/podcastindex-go/internal/recording"
	"github.com/castware/podcastindex-go/pkg/config"
	"github.com/castware/podcastindex-go/podcastindex"
	"github.com/castware/podcastindex-go/podcastindex/schema"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate API responses against the versioned schemas",
	Long: `Run a list of probes against the live Podcast Index API and check
each response against the structural schema shipped for its endpoint.

With --record, live response bodies are persisted to the recordings
database so a later --replay can re-check them offline without API
credentials.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("record", false, "persist live responses to the recordings database")
	validateCmd.Flags().String("replay", "", "re-validate a recorded run by run ID instead of calling the live API")
	validateCmd.Flags().String("probes", "", "YAML probe file (defaults to the built-in probe set)")
	validateCmd.Flags().Float64("rate", 0, "probes per second (0 uses the configured value)")
	validateCmd.Flags().String("schema-version", "", "schema version to validate against (defaults to the configured value)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	version, _ := cmd.Flags().GetString("schema-version")
	if version == "" {
		version = cfg.Validator.SchemaVersion
	}

	replayRun, _ := cmd.Flags().GetString("replay")
	if replayRun != "" {
		return replayRecordedRun(cmd.OutOrStdout(), cfg, version, replayRun)
	}

	return validateLive(cmd, cfg, version)
}

func validateLive(cmd *cobra.Command, cfg *config.Config, version string) error {
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	probes := schema.DefaultProbes()
	probeFile, _ := cmd.Flags().GetString("probes")
	if probeFile == "" {
		probeFile = cfg.Validator.ProbeFile
	}
	if probeFile != "" {
		loaded, err := schema.LoadProbes(probeFile)
		if err != nil {
			return err
		}
		probes = loaded
	}

	rate, _ := cmd.Flags().GetFloat64("rate")
	if rate <= 0 {
		rate = cfg.Validator.ProbesPerSecond
	}

	var fetcher schema.Fetcher = newClient(cfg)

	record, _ := cmd.Flags().GetBool("record")
	if record {
		store, err := recording.Open(cfg.Recording.Path, cfg.Recording.Verbose)
		if err != nil {
			return err
		}
		defer store.Close()

		rec := &recordingFetcher{
			client: fetcher,
			store:  store,
			runID:  uuid.NewString(),
		}
		fetcher = rec
		defer fmt.Fprintf(cmd.OutOrStdout(), "\nrecorded run %s\n", rec.runID)
	}

	runner := schema.NewRunner(fetcher, version, rate)
	report, err := runner.Run(cmd.Context(), probes)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)
	if !report.Passed() {
		return fmt.Errorf("%d of %d probes failed", len(report.Failures()), len(report.Results))
	}
	return nil
}

func replayRecordedRun(out io.Writer, cfg *config.Config, version, runID string) error {
	store, err := recording.Open(cfg.Recording.Path, cfg.Recording.Verbose)
	if err != nil {
		return err
	}
	defer store.Close()

	responses, err := store.ListByRun(runID)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		return fmt.Errorf("no recorded responses for run %s", runID)
	}

	runner := schema.NewRunner(nil, version, 0)
	report := &schema.Report{
		RunID:     runID,
		Version:   version,
		StartedAt: time.Now().UTC(),
	}
	for _, resp := range responses {
		report.Results = append(report.Results, runner.CheckBody(resp.Endpoint, resp.Body))
	}

	printReport(out, report)
	if !report.Passed() {
		return fmt.Errorf("%d of %d recorded responses failed", len(report.Failures()), len(report.Results))
	}
	return nil
}

func printReport(out io.Writer, report *schema.Report) {
	fmt.Fprintf(out, "run %s (schema v%s)\n\n", report.RunID, report.Version)
	for _, result := range report.Results {
		switch {
		case result.Pass:
			fmt.Fprintf(out, "PASS  %s\n", result.Endpoint)
		case result.SchemaMissing:
			fmt.Fprintf(out, "MISS  %s (no schema stored)\n", result.Endpoint)
		case result.Err != nil:
			fmt.Fprintf(out, "FAIL  %s: %v\n", result.Endpoint, result.Err)
		default:
			fmt.Fprintf(out, "FAIL  %s\n", result.Endpoint)
			for _, fieldErr := range result.Errors {
				fmt.Fprintf(out, "        %s\n", fieldErr)
			}
		}
	}
}

// recordingFetcher wraps the client's raw fetch and persists every
// exchange it sees, including non-success responses.
type recordingFetcher struct {
	client schema.Fetcher
	store  *recording.Store
	runID  string
}

func (f *recordingFetcher) Raw(ctx context.Context, endpoint string, opts podcastindex.Options) ([]byte, error) {
	body, err := f.client.Raw(ctx, endpoint, opts)

	rec := &recording.Response{
		RunID:    f.runID,
		Endpoint: endpoint,
		Query:    encodeProbeQuery(opts),
	}

	if err != nil {
		var transportErr *podcastindex.TransportError
		if errors.As(err, &transportErr) {
			rec.StatusCode = transportErr.StatusCode
			rec.Body = []byte(transportErr.Body)
			if saveErr := f.store.Save(rec); saveErr != nil {
				log.Printf("[WARN] failed to record %s response: %v", endpoint, saveErr)
			}
		}
		return nil, err
	}

	rec.StatusCode = 200
	rec.Body = body
	if saveErr := f.store.Save(rec); saveErr != nil {
		log.Printf("[WARN] failed to record %s response: %v", endpoint, saveErr)
	}
	return body, nil
}

func encodeProbeQuery(opts podcastindex.Options) string {
	if len(opts) == 0 {
		return ""
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return ""
	}
	return string(data)
}
