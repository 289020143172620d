package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/observability"
	"github.com/jonathan/site-content/internal/sitemap"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate every content category",
	Long: "Load every content category concurrently, run the schema, confidentiality and per-record checks, " +
		"and report record counts. Exits non-zero if any category is rejected.",
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())

	preloadErr := app.catalog.Preload(cmd.Context())

	names := app.catalog.Categories()
	counts := make([]observability.CategoryCount, 0, len(names))
	for _, name := range names {
		n, _, err := app.catalog.Count(name)
		counts = append(counts, observability.CategoryCount{Category: name, Records: n, Err: err})
	}
	printer.PrintCategorySummary(counts)

	if preloadErr == nil {
		base, err := baseURL()
		if err != nil {
			return err
		}
		entries, err := sitemap.Collect(app.catalog, base, staticPaths(), time.Now())
		if err != nil {
			return err
		}
		if dups := sitemap.Duplicates(entries); len(dups) > 0 {
			app.logger.Warn("route inventory contains duplicate URLs", logging.Strings("urls", dups))
			printer.PrintDuplicates(dups)
		}
	}

	printer.PrintValidation(preloadErr)
	if preloadErr != nil {
		return fmt.Errorf("content validation failed: %w", preloadErr)
	}
	return nil
}
