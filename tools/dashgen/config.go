package main

import "errors"

// JobName is the Prometheus scrape job the generated queries select.
const JobName = "emag-catalog"

// KnownMetrics is the set of metric names exported by emag-catalog plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"emag_http_request_duration_seconds_bucket": true,
	"emag_http_requests_total":                  true,

	// Health metrics.
	"emag_healthz_up": true,
	"emag_readyz_up":  true,

	// Tool metrics.
	"emag_tool_calls_total":                  true,
	"emag_tool_call_duration_seconds_bucket": true,
	"emag_search_redirects_total":            true,

	// Upstream metrics.
	"emag_upstream_requests_total":                  true,
	"emag_upstream_request_duration_seconds_bucket": true,
	"emag_token_probes_total":                       true,

	// Recording rules.
	"emag:http_requests:rate5m":     true,
	"emag:http_errors:rate5m":       true,
	"emag:tool_calls:rate5m":        true,
	"emag:tool_errors:rate5m":       true,
	"emag:upstream_requests:rate5m": true,
	"emag:upstream_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
