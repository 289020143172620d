package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/observability"
	"github.com/jonathan/site-content/internal/sitemap"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route inventory as a table",
	Long:  "Print every routable URL with its last-modified date, change frequency and priority, flagging duplicates.",
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	base, err := baseURL()
	if err != nil {
		return err
	}

	entries, err := sitemap.Collect(app.catalog, base, staticPaths(), time.Now())
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintRoutes(entries)
	printer.PrintDuplicates(sitemap.Duplicates(entries))
	return nil
}
