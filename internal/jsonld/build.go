package jsonld

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/site-content/internal/types"
)

// Fragment kinds addressable by name.
const (
	KindOrganization = "organization"
	KindWebSite      = "website"
	KindFAQ          = "faq"
	KindBreadcrumbs  = "breadcrumbs"
)

// Kinds lists every named fragment kind.
var Kinds = []string{KindOrganization, KindWebSite, KindFAQ, KindBreadcrumbs}

var (
	// ErrUnknownKind is returned for a fragment kind not in Kinds.
	ErrUnknownKind = errors.New("unknown structured-data kind")
	// ErrInvalidPath is returned when a breadcrumb path is missing or relative.
	ErrInvalidPath = errors.New("breadcrumb path must start with /")
)

// Catalog is the content the named fragments are built from.
type Catalog interface {
	Site() (types.SiteConfig, error)
	FAQEntries() ([]types.FAQEntry, error)
	PageTitles() (map[string]string, error)
}

// Request selects one named fragment.
type Request struct {
	Kind string
	// BaseURL overrides the site config url when set.
	BaseURL string
	// Path is the page path for breadcrumbs.
	Path     string
	Identity Identity
}

// Build assembles the fragment named by req.Kind from catalog.
func Build(catalog Catalog, req Request) (Fragment, error) {
	switch req.Kind {
	case KindOrganization, KindWebSite:
		site, err := catalog.Site()
		if err != nil {
			return nil, err
		}
		if req.BaseURL != "" {
			site.URL = req.BaseURL
		}
		if req.Kind == KindOrganization {
			return NewOrganization(site, req.Identity), nil
		}
		return NewWebSite(site, req.Identity), nil

	case KindFAQ:
		entries, err := catalog.FAQEntries()
		if err != nil {
			return nil, err
		}
		return FAQ(entries), nil

	case KindBreadcrumbs:
		if !strings.HasPrefix(req.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, req.Path)
		}
		base := req.BaseURL
		if base == "" {
			site, err := catalog.Site()
			if err != nil {
				return nil, err
			}
			base = site.URL
		}
		titles, err := catalog.PageTitles()
		if err != nil {
			return nil, err
		}
		return Breadcrumbs(TrailForPath(base, req.Path, titles)), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
}
