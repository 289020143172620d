// Package observability provides formatted output for the CLI and the
// Prometheus metrics recorded while serving content.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonathan/site-content/internal/sitemap"
	"github.com/jonathan/site-content/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	return t
}

// CategoryCount is one row of a load summary. Err is set when the category
// failed to load.
type CategoryCount struct {
	Category string
	Records  int
	Err      error
}

// PrintCategorySummary renders one row per category with its record count
// or load error.
func (p *Printer) PrintCategorySummary(counts []CategoryCount) {
	t := p.newTable()
	t.AppendHeader(table.Row{"Category", "Records", "Status"})

	total := 0
	for _, c := range counts {
		status := "ok"
		if c.Err != nil {
			status = truncate(c.Err.Error(), 60)
		}
		total += c.Records
		t.AppendRow(table.Row{c.Category, c.Records, status})
	}
	t.AppendFooter(table.Row{"Total", total, ""})
	t.Render()
}

// PrintRoutes renders the route inventory in emission order.
func (p *Printer) PrintRoutes(entries []sitemap.RouteEntry) {
	t := p.newTable()
	t.AppendHeader(table.Row{"#", "URL", "Last Modified", "Change Freq", "Priority"})
	for i, e := range entries {
		t.AppendRow(table.Row{
			i + 1,
			e.URL,
			e.LastModified.UTC().Format(types.DateLayout),
			e.ChangeFrequency,
			fmt.Sprintf("%.1f", e.Priority),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d routes", len(entries)), "", "", ""})
	t.Render()
}

// PrintRecords renders arbitrary record rows under the given header.
func (p *Printer) PrintRecords(header table.Row, rows []table.Row) {
	t := p.newTable()
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

// PrintDuplicates reports route URLs emitted more than once.
func (p *Printer) PrintDuplicates(urls []string) {
	if len(urls) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d duplicated URLs:\n\n", len(urls)))
	count := min(len(urls), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", urls[i]))
	}
	if len(urls) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(urls)-maxItemsToShow))
	}

	p.printBox("DUPLICATE ROUTES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the result of validating every category.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL CONTENT VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	p.printBox("CONTENT VALIDATION FAILED", wrap(err.Error(), boxWidth-4))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func wrap(s string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
