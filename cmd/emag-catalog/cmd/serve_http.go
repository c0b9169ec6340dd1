package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/emag-catalog/internal/api/handlers"
	mw "github.com/donaldgifford/emag-catalog/internal/api/middleware"
	"github.com/donaldgifford/emag-catalog/internal/emag"
	"github.com/donaldgifford/emag-catalog/internal/tools"
)

const shutdownTimeout = 10 * time.Second

func serveHTTPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-http",
		Short: "Run the REST API and the MCP streamable HTTP endpoint",
		Long: "Starts an HTTP server exposing the catalog under /api/v1, MCP at /mcp,\n" +
			"probes at /healthz and /readyz and Prometheus metrics at /metrics.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeHTTP(cmd.Context())
		},
	}
}

// newEcho assembles the HTTP surface.
func newEcho(log *slog.Logger, svc *tools.Service, tokens emag.TokenProvider, name, version string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(tokens)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("emag-catalog API", version))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(svc))

	server := tools.NewServer(svc, name, version)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
	e.Any("/mcp", echo.WrapHandler(mcpHandler))

	return e
}

func runServeHTTP(parent context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flush, err := a.startTelemetry(ctx)
	if err != nil {
		return err
	}
	defer flush()

	e := newEcho(a.logger, a.service, a.tokens, a.cfg.MCP.Name, a.cfg.MCP.Version)
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	addr := a.cfg.Server.Addr()
	a.logger.Info("starting server", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
