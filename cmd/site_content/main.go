// Package main provides the entry point for the site content CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "site_content",
	Short: "Site content stores, sitemap, robots and structured data",
	Long: "site_content loads and validates the marketing site's content categories and generates " +
		"the sitemap, robots directives and JSON-LD structured data from them, from the command line or over HTTP.",
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
