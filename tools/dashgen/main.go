package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/emag-catalog/tools/dashgen/dashboards"
	"github.com/donaldgifford/emag-catalog/tools/dashgen/rules"
	"github.com/donaldgifford/emag-catalog/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// Output file locations relative to Config.OutputDir.
var (
	dashboardPath = filepath.Join("grafana", "data", "emag-catalog-overview.json")
	recordingPath = filepath.Join("prometheus", "emag-catalog-recording-rules.yaml")
	alertsPath    = filepath.Join("prometheus", "emag-catalog-alerts.yaml")
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, error) {
	var artifacts []artifact

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		if err := check("dashboard", validate.Dashboard(dash, KnownMetrics)); err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		artifacts = append(artifacts, artifact{path: dashboardPath, data: append(data, '\n')})
	}

	if cfg.RulesEnabled {
		for _, r := range []struct {
			path string
			cr   rules.PrometheusRule
		}{
			{path: recordingPath, cr: rules.RecordingRules()},
			{path: alertsPath, cr: rules.AlertRules()},
		} {
			if err := check(r.cr.Metadata.Name, validate.Rules(r.cr, KnownMetrics)); err != nil {
				return nil, err
			}

			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, fmt.Errorf("marshaling %s: %w", r.cr.Metadata.Name, err)
			}
			artifacts = append(artifacts, artifact{
				path: r.path,
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	return artifacts, nil
}

func check(name string, res *validate.Result) error {
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "dashgen: %s: warning: %s\n", name, w)
	}
	if res.Ok() {
		return nil
	}
	errs := make([]error, 0, len(res.Errors))
	for _, e := range res.Errors {
		errs = append(errs, errors.New(e))
	}
	return fmt.Errorf("validating %s: %w", name, errors.Join(errs...))
}
