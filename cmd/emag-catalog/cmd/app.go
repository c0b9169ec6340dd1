package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apiclient "github.com/donaldgifford/emag-catalog/internal/api/client"
	"github.com/donaldgifford/emag-catalog/internal/api/handlers"
	"github.com/donaldgifford/emag-catalog/internal/config"
	"github.com/donaldgifford/emag-catalog/internal/emag"
	"github.com/donaldgifford/emag-catalog/internal/telemetry"
	"github.com/donaldgifford/emag-catalog/internal/tools"
	"github.com/donaldgifford/emag-catalog/pkg/logger"
)

// app holds the wiring shared by every command.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	tokens  *emag.HeaderTokenProvider
	service *tools.Service
}

// loadConfig reads the config file and applies flag and env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if level := viper.GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format := viper.GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	httpClient := &http.Client{
		Timeout:   cfg.Upstream.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	tokens := emag.NewHeaderTokenProvider(
		emag.WithTokenURL(cfg.Upstream.TokenURL),
		emag.WithTokenHeader(cfg.Upstream.TokenHeader),
		emag.WithHTTPClient(httpClient),
	)

	client := emag.NewAPIClient(tokens,
		emag.WithBaseURL(cfg.Upstream.BaseURL),
		emag.WithCredentialHeader(cfg.Upstream.TokenHeader),
		emag.WithRequestSource(cfg.Upstream.RequestSource),
		emag.WithAPIHTTPClient(httpClient),
	)

	return &app{
		cfg:     cfg,
		logger:  log,
		tokens:  tokens,
		service: tools.NewService(client, log),
	}, nil
}

// startTelemetry installs the trace provider. The returned func flushes it.
func (a *app) startTelemetry(ctx context.Context) (func(), error) {
	shutdown, err := telemetry.Setup(ctx, a.cfg.Telemetry, Version)
	if err != nil {
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}
	return func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("flushing traces", "error", err)
		}
	}, nil
}

// newBackend returns the catalog the operation commands talk to: the
// HTTP API when --server is set, eMAG directly otherwise.
func newBackend() (handlers.CatalogService, error) {
	if server := viper.GetString("server"); server != "" {
		return apiclient.New(server), nil
	}
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	return a.service, nil
}
