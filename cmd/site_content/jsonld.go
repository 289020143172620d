package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/jsonld"
)

var (
	jsonldPath    string
	jsonldScript  bool
	jsonldOutFile string
)

var jsonldCmd = &cobra.Command{
	Use:       "jsonld <" + strings.Join(jsonld.Kinds, "|") + ">",
	Short:     "Generate a JSON-LD structured-data fragment",
	Long:      "Generate one schema.org fragment from the site config and content. Breadcrumbs require --path.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: jsonld.Kinds,
	RunE:      runJSONLD,
}

func init() {
	jsonldCmd.Flags().StringVar(&jsonldPath, "path", "", "Page path for breadcrumbs (e.g. /blog/my-post)")
	jsonldCmd.Flags().BoolVar(&jsonldScript, "script", false, "Wrap the fragment in an ld+json script tag")
	jsonldCmd.Flags().StringVarP(&jsonldOutFile, "out", "o", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(jsonldCmd)
}

func runJSONLD(cmd *cobra.Command, args []string) error {
	fragment, err := jsonld.Build(app.catalog, jsonld.Request{
		Kind:     args[0],
		BaseURL:  app.cfg.BaseURL,
		Path:     jsonldPath,
		Identity: jsonld.DefaultIdentity,
	})
	if err != nil {
		return err
	}

	var rendered string
	if jsonldScript {
		tag, err := jsonld.ScriptTag(fragment)
		if err != nil {
			return err
		}
		rendered = string(tag)
	} else {
		data, err := jsonld.Marshal(fragment)
		if err != nil {
			return err
		}
		rendered = string(data)
	}

	out, closeOut, err := openOutput(cmd, jsonldOutFile)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, rendered); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write fragment: %w", err)
	}
	app.metrics.ObserveArtifact("jsonld")
	return closeOut()
}
