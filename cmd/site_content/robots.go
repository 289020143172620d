package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/robots"
)

var robotsOutFile string

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Generate robots.txt",
	Long:  "Write the crawl directives for the site, including the sitemap pointer.",
	RunE:  runRobots,
}

func init() {
	robotsCmd.Flags().StringVarP(&robotsOutFile, "out", "o", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(robotsCmd)
}

func runRobots(cmd *cobra.Command, _ []string) error {
	base, err := baseURL()
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, robotsOutFile)
	if err != nil {
		return err
	}
	if _, err := robots.Build(base).WriteTo(out); err != nil {
		_ = closeOut()
		return err
	}
	app.metrics.ObserveArtifact("robots")
	return closeOut()
}
