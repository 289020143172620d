package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/config"
	"github.com/jonathan/site-content/internal/content"
	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/observability"
)

var (
	configPath    string
	flagBaseURL   string
	flagContent   string
	flagLogLevel  string
	flagLogPretty bool
)

// app is the state shared by every command, built once per invocation.
var app struct {
	cfg     config.Config
	logger  logging.Logger
	metrics *observability.Metrics
	catalog *content.Catalog
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to JSON or YAML config file")
	flags.StringVar(&flagBaseURL, "base-url", "", "Canonical site origin (defaults to the url in site.json)")
	flags.StringVar(&flagContent, "content-dir", "", "Directory holding the content documents (defaults to bundled content)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&flagLogPretty, "log-pretty", false, "Human-readable console logs")
}

// setupApp resolves configuration as file < environment < flags, then builds
// the logger, metrics and catalog.
func setupApp(_ *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}
	if err := fileCfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flagCfg := config.Config{
		BaseURL:    flagBaseURL,
		ContentDir: flagContent,
		Log:        logging.Config{Level: flagLogLevel, Development: flagLogPretty},
	}
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	metrics := observability.NewMetrics()
	source := content.Bundled()
	if cfg.ContentDir != "" {
		source = content.Dir(cfg.ContentDir)
	}

	app.cfg = cfg
	app.logger = logger
	app.metrics = metrics
	app.catalog = content.NewCatalog(source,
		content.WithLogger(logger.With(logging.String("component", "content"))),
		content.WithObserver(metrics),
	)
	return nil
}

// baseURL returns the configured origin or the site config url.
func baseURL() (string, error) {
	if app.cfg.BaseURL != "" {
		return strings.TrimRight(app.cfg.BaseURL, "/"), nil
	}
	site, err := app.catalog.Site()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(site.URL, "/"), nil
}

// staticPaths returns the configured static routes, nil meaning the default.
func staticPaths() []string {
	if len(app.cfg.StaticPaths) == 0 {
		return nil
	}
	return app.cfg.StaticPaths
}

// openOutput returns the command's stdout when path is empty, otherwise a
// newly created file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
