package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/sitemap"
)

var sitemapOutFile string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml from the route inventory",
	Long:  "Build the route inventory from the static pages, published blog posts and open job listings and write it as sitemap XML.",
	RunE:  runSitemap,
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapOutFile, "out", "o", "", "Path to output XML file (default stdout)")
	rootCmd.AddCommand(sitemapCmd)
}

func runSitemap(cmd *cobra.Command, _ []string) error {
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
	}

	out, closeOut, err := openOutput(cmd, sitemapOutFile)
	if err != nil {
		return err
	}
	if err := sitemap.Encode(out, entries); err != nil {
		_ = closeOut()
		return err
	}
	app.metrics.ObserveArtifact("sitemap")
	app.logger.Info("sitemap generated", logging.Int("routes", len(entries)))
	return closeOut()
}
