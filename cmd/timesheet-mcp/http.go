// Package main provides the entry point for the timesheet-mcp CLI.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hourstack/timesheet-mcp/internal/config"
	"github.com/hourstack/timesheet-mcp/internal/httpserver"
	"github.com/hourstack/timesheet-mcp/internal/output"
	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// shutdownTimeout bounds how long in-flight requests get on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// newHTTPCmd creates the http command for running the stateless HTTP
// transport.
func newHTTPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "http",
		Short: "Run as MCP server (stateless HTTP transport)",
		Long: `Run timesheet-mcp as a remote MCP server over streamable HTTP.

Every request is handled statelessly: clients authenticate with a
Timesheet API token as a bearer token, and TIMESHEET_API_TOKEN serves as
the fallback credential for deployments behind a trusted proxy.

Bind address and endpoint path come from HOST, PORT, and
MCP_ENDPOINT_PATH. The server also exposes a landing page for browsers,
a /health endpoint, and OAuth discovery documents.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			registry, err := widgets.Load()
			if err != nil {
				return err
			}

			logger := newLogger()
			srv := httpserver.New(cfg, buildVersion(), registry, logger)
			httpSrv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("http server listening",
					"addr", cfg.Addr(), "endpoint", cfg.EndpointPath)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return output.NewSystemErrorWithCause("http server failed", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return output.NewSystemErrorWithCause("shutdown failed", err)
			}
			return nil
		},
	}
}
