package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/server"
	"github.com/jonathan/site-content/internal/server/ratelimit"
)

var (
	servePort    int
	serveNoCheck bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the content HTTP server",
	Long: "Start an HTTP server exposing /sitemap.xml, /robots.txt, the read-only content API, " +
		"structured data and Prometheus metrics. Content is validated before listening unless --skip-preload is set.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or 8080)")
	serveCmd.Flags().BoolVar(&serveNoCheck, "skip-preload", false, "Start without validating content first")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = app.logger.Sync() }()

	if !serveNoCheck {
		if err := app.catalog.Preload(ctx); err != nil {
			return fmt.Errorf("content validation failed: %w", err)
		}
	}

	port := app.cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srv := server.New(app.catalog, server.Config{
		Port:        port,
		BaseURL:     app.cfg.BaseURL,
		StaticPaths: staticPaths(),
		Logger:      app.logger.With(logging.String("component", "server")),
		Metrics:     app.metrics,
		RateLimit:   ratelimit.LoadConfig(),
	})
	return srv.Start(ctx)
}
