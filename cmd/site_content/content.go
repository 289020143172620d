package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonathan/site-content/internal/content"
	"github.com/jonathan/site-content/internal/observability"
	"github.com/jonathan/site-content/internal/types"
)

var (
	contentFacet string
	contentSlug  string
	contentJSON  bool
)

var contentCmd = &cobra.Command{
	Use:   "content <category>",
	Short: "List or look up content records",
	Long: "List the records of one category, optionally filtered with --facet (\"all\" means no filter), " +
		"or print a single record with --slug.",
	Args: cobra.ExactArgs(1),
	RunE: runContent,
}

func init() {
	contentCmd.Flags().StringVar(&contentFacet, "facet", content.AllSentinel, "Facet value to filter by")
	contentCmd.Flags().StringVar(&contentSlug, "slug", "", "Print the record with this slug")
	contentCmd.Flags().BoolVar(&contentJSON, "json", false, "Print records as JSON instead of a table")
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	category := args[0]
	out := cmd.OutOrStdout()

	if contentSlug != "" {
		record, ok, err := app.catalog.GetRecord(category, contentSlug)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s record not found: %s", category, contentSlug)
		}
		return writeJSON(out, record)
	}

	records, err := app.catalog.ListCategory(category, content.ParseFacet(contentFacet))
	if err != nil {
		return err
	}

	header, rows, ok := recordRows(records)
	if contentJSON || !ok {
		return writeJSON(out, records)
	}
	observability.NewPrinter(out).PrintRecords(header, rows)
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// recordRows summarizes a typed record slice as table rows. ok is false for
// values with no tabular form (the site config).
func recordRows(records any) (table.Row, []table.Row, bool) {
	var rows []table.Row
	switch rs := records.(type) {
	case []types.Service:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Title, r.Featured})
		}
		return table.Row{"Slug", "Title", "Featured"}, rows, true
	case []types.Project:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Title, r.Category, r.Featured})
		}
		return table.Row{"Slug", "Title", "Category", "Featured"}, rows, true
	case []types.Testimonial:
		for _, r := range rs {
			rows = append(rows, table.Row{r.ID, r.Author, r.Company, r.Rating})
		}
		return table.Row{"ID", "Author", "Company", "Rating"}, rows, true
	case []types.TeamMember:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Name, r.Role, r.Department})
		}
		return table.Row{"Slug", "Name", "Role", "Department"}, rows, true
	case []types.Technology:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Name, r.Category})
		}
		return table.Row{"Slug", "Name", "Category"}, rows, true
	case []types.CaseStudy:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Title, r.Industry, r.Confidentiality})
		}
		return table.Row{"Slug", "Title", "Industry", "Confidentiality"}, rows, true
	case []types.BlogPost:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Title, r.Category, r.LastModified().String(), r.Draft})
		}
		return table.Row{"Slug", "Title", "Category", "Last Modified", "Draft"}, rows, true
	case []types.JobListing:
		for _, r := range rs {
			rows = append(rows, table.Row{r.Slug, r.Title, r.Department, r.EmploymentType, r.Closed})
		}
		return table.Row{"Slug", "Title", "Department", "Type", "Closed"}, rows, true
	case []types.FAQEntry:
		for _, r := range rs {
			rows = append(rows, table.Row{r.ID, r.Question, r.Category})
		}
		return table.Row{"ID", "Question", "Category"}, rows, true
	default:
		return nil, nil, false
	}
}
