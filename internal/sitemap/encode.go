package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/jonathan/site-content/internal/types"
)

// Namespace is the sitemaps.org schema namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority"`
}

// Encode writes entries as an XML sitemap.
func Encode(w io.Writer, entries []RouteEntry) error {
	doc := urlset{XMLNS: Namespace, URLs: make([]urlXML, 0, len(entries))}
	for _, e := range entries {
		u := urlXML{
			Loc:        e.URL,
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(types.DateLayout)
		}
		doc.URLs = append(doc.URLs, u)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	return nil
}
