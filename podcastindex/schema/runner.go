package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/castware/podcastindex-go/podcastindex"
)

// Fetcher is the slice of the client the runner needs: a signed raw
// GET. *podcastindex.Client satisfies it.
type Fetcher interface {
	Raw(ctx context.Context, endpoint string, opts podcastindex.Options) ([]byte, error)
}

// Probe is one {endpoint, query} pair to exercise against the live
// API. Probes are independent and order-insensitive.
type Probe struct {
	Endpoint string         `yaml:"endpoint"`
	Options  map[string]any `yaml:"options"`
}

// LoadProbes reads a probe list from a YAML file.
func LoadProbes(path string) ([]Probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading probe file: %w", err)
	}

	var probes []Probe
	if err := yaml.Unmarshal(data, &probes); err != nil {
		return nil, fmt.Errorf("parsing probe file %s: %w", path, err)
	}
	return probes, nil
}

// DefaultProbes covers every endpoint with a stored schema using cheap
// well-known queries.
func DefaultProbes() []Probe {
	return []Probe{
		{Endpoint: "search/byterm", Options: map[string]any{"q": "podcasting 2.0", "max": 5}},
		{Endpoint: "podcasts/byfeedid", Options: map[string]any{"id": 920666}},
		{Endpoint: "podcasts/trending", Options: map[string]any{"max": 5, "lang": "en"}},
		{Endpoint: "episodes/byfeedid", Options: map[string]any{"id": 920666, "max": 5}},
		{Endpoint: "recent/episodes", Options: map[string]any{"max": 5}},
		{Endpoint: "recent/feeds", Options: map[string]any{"max": 5}},
		{Endpoint: "categories/list", Options: nil},
		{Endpoint: "stats/current", Options: nil},
	}
}

// Result is the outcome of validating one probe. SchemaMissing marks a
// validator-level failure (no contract stored for the endpoint) as
// opposed to a structural mismatch in the response itself. Err records
// a fetch or decode failure that prevented validation entirely.
type Result struct {
	Endpoint      string
	Pass          bool
	SchemaMissing bool
	Errors        []FieldError
	Err           error
}

// Report accumulates the results of one validation run.
type Report struct {
	RunID     string
	Version   string
	StartedAt time.Time
	Results   []Result
}

// Passed reports whether every probe in the run validated cleanly.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Pass {
			return false
		}
	}
	return true
}

// Failures returns only the failing results.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res)
		}
	}
	return failed
}

// Runner drives a probe list through the client pipeline and checks
// each response against its stored schema.
type Runner struct {
	fetcher Fetcher
	version string
	limiter *rate.Limiter
}

// NewRunner builds a runner for one schema version. probesPerSecond
// paces outbound probes so a validation run stays polite to the live
// API; zero or negative disables pacing. This is tool-side pacing
// only — the client itself never rate limits.
func NewRunner(fetcher Fetcher, version string, probesPerSecond float64) *Runner {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if probesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(probesPerSecond), 1)
	}

	return &Runner{
		fetcher: fetcher,
		version: version,
		limiter: limiter,
	}
}

// Run executes every probe and returns the accumulated report. Probes
// run sequentially; a failing probe never stops the run. The returned
// error is reserved for context cancellation.
func (r *Runner) Run(ctx context.Context, probes []Probe) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Version:   r.version,
		StartedAt: time.Now().UTC(),
	}

	for _, probe := range probes {
		if err := r.limiter.Wait(ctx); err != nil {
			return report, err
		}

		body, err := r.fetcher.Raw(ctx, probe.Endpoint, probeOptions(probe.Options))
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			report.Results = append(report.Results, Result{Endpoint: probe.Endpoint, Err: err})
			continue
		}

		report.Results = append(report.Results, r.CheckBody(probe.Endpoint, body))
	}

	return report, nil
}

// probeOptions converts YAML-decoded option values into the encoder's
// input domain. YAML lists arrive as []any and are remapped to
// []string element by element.
func probeOptions(opts map[string]any) podcastindex.Options {
	if len(opts) == 0 {
		return nil
	}

	converted := make(podcastindex.Options, len(opts))
	for k, v := range opts {
		if list, ok := v.([]any); ok {
			strs := make([]string, len(list))
			for i, e := range list {
				strs[i] = fmt.Sprint(e)
			}
			converted[k] = strs
			continue
		}
		converted[k] = v
	}
	return converted
}

// CheckBody validates one raw response body against the stored schema
// for an endpoint. It backs both live runs and offline replay of
// recorded responses.
func (r *Runner) CheckBody(endpoint string, body []byte) Result {
	result := Result{Endpoint: endpoint}

	s, err := Load(r.version, endpoint)
	if err != nil {
		var notFound *ErrSchemaNotFound
		if errors.As(err, &notFound) {
			result.SchemaMissing = true
		}
		result.Err = err
		return result
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		result.Err = fmt.Errorf("decoding response for %s: %w", endpoint, err)
		return result
	}

	result.Errors = Check(doc, s)
	result.Pass = len(result.Errors) == 0
	return result
}
