package server

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/jonathan/site-content/internal/content"
	"github.com/jonathan/site-content/internal/jsonld"
	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/robots"
	"github.com/jonathan/site-content/internal/sitemap"
	"github.com/jonathan/site-content/internal/types"
)

// CategorySummary is one entry of the category index.
type CategorySummary struct {
	Category string `json:"category"`
	Records  int    `json:"records"`
}

// ContentResponse wraps a category listing.
type ContentResponse struct {
	Category string `json:"category"`
	Facet    string `json:"facet"`
	Records  any    `json:"records"`
}

// resolveBaseURL returns the configured origin, falling back to the site
// config url.
func (s *Server) resolveBaseURL() (string, error) {
	if s.baseURL != "" {
		return s.baseURL, nil
	}
	site, err := s.catalog.Site()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(site.URL, "/"), nil
}

func (s *Server) observeArtifact(kind string) {
	if s.metrics != nil {
		s.metrics.ObserveArtifact(kind)
	}
}

// handleSitemap renders the route inventory as sitemap XML
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	base, err := s.resolveBaseURL()
	if err != nil {
		s.failure(w, r, err)
		return
	}

	entries, err := sitemap.Collect(s.catalog, base, s.staticPaths, s.now())
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if dups := sitemap.Duplicates(entries); len(dups) > 0 {
		s.logger.Warn("route inventory contains duplicate URLs", logging.Strings("urls", dups))
	}

	// Encode into a buffer so a failure can still produce an error status.
	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, entries); err != nil {
		s.failure(w, r, err)
		return
	}
	s.observeArtifact("sitemap")
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleRobots renders the crawl directives
func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	base, err := s.resolveBaseURL()
	if err != nil {
		s.failure(w, r, err)
		return
	}

	s.observeArtifact("robots")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := robots.Build(base).WriteTo(w); err != nil {
		s.logger.Warn("failed to write robots response", logging.Error(err))
	}
}

// handleListCategories returns every category with its record count
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	names := s.catalog.Categories()
	summaries := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		n, _, err := s.catalog.Count(name)
		if err != nil {
			s.failure(w, r, err)
			return
		}
		summaries = append(summaries, CategorySummary{Category: name, Records: n})
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleListContent returns the records of one category, optionally
// filtered by ?facet=
func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	facet := content.ParseFacet(r.URL.Query().Get("facet"))

	records, err := s.catalog.ListCategory(category, facet)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ContentResponse{
		Category: category,
		Facet:    facet.String(),
		Records:  publicView(records),
	})
}

// handleGetContent returns one record by slug
func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	slug := r.PathValue("slug")

	record, ok, err := s.catalog.GetRecord(category, slug)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if cs, isCase := record.(types.CaseStudy); isCase && cs.Confidentiality == types.ConfidentialityConfidential {
		ok = false
	}
	if !ok {
		s.failure(w, r, &ErrNotFound{Category: category, Slug: slug})
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// publicView hides records that must never leave the process. Confidential
// case studies pass the gate but are not served.
func publicView(records any) any {
	studies, ok := records.([]types.CaseStudy)
	if !ok {
		return records
	}
	visible := make([]types.CaseStudy, 0, len(studies))
	for _, cs := range studies {
		if cs.Confidentiality != types.ConfidentialityConfidential {
			visible = append(visible, cs)
		}
	}
	return visible
}

// handleStructuredData returns one JSON-LD fragment
func (s *Server) handleStructuredData(w http.ResponseWriter, r *http.Request) {
	fragment, err := jsonld.Build(s.catalog, jsonld.Request{
		Kind:     r.PathValue("kind"),
		BaseURL:  s.baseURL,
		Path:     r.URL.Query().Get("path"),
		Identity: s.identity,
	})
	if err != nil {
		s.failure(w, r, err)
		return
	}

	data, err := jsonld.Marshal(fragment)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.observeArtifact("jsonld")
	w.Header().Set("Content-Type", "application/ld+json")
	_, _ = w.Write(data)
}
