package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/emag-catalog/internal/tools"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: "Serves the catalog tools to an MCP host over stdin/stdout.\n" +
			"Logs go to stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
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

	server := tools.NewServer(a.service, a.cfg.MCP.Name, a.cfg.MCP.Version)

	a.logger.Info("serving MCP over stdio", "name", a.cfg.MCP.Name, "version", a.cfg.MCP.Version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running MCP server: %w", err)
	}
	a.logger.Info("MCP session closed")
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
