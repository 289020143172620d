// Package sitemap builds the route inventory: every public page with its
// last-modified date, change frequency and priority.
package sitemap

import (
	"strings"
	"time"

	"github.com/jonathan/site-content/internal/types"
)

// ChangeFrequency is the sitemap changefreq hint.
type ChangeFrequency string

const (
	// Daily is used for the home page.
	Daily ChangeFrequency = "daily"
	// Weekly is used for every other page.
	Weekly ChangeFrequency = "weekly"
	// Monthly is accepted by the encoder but not produced by Build.
	Monthly ChangeFrequency = "monthly"
)

// Priorities assigned by Build.
const (
	RootPriority         = 1.0
	StaticPriority       = 0.8
	FeaturedPostPriority = 0.8
	PostPriority         = 0.6
	FeaturedJobPriority  = 0.7
	JobPriority          = 0.5
)

const (
	rootPath      = "/"
	blogPrefix    = "/blog/"
	careersPrefix = "/careers/"
)

// RouteEntry is one routable URL.
type RouteEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency ChangeFrequency
	Priority        float64
}

// DefaultStaticPaths is the hand-maintained list of static pages. Dynamic
// blog and careers pages must not be listed here or they are emitted twice.
var DefaultStaticPaths = []string{
	"/",
	"/about",
	"/services",
	"/services/web-development",
	"/services/mobile-development",
	"/services/cloud-solutions",
	"/services/ui-ux-design",
	"/portfolio",
	"/technologies",
	"/contact",
	"/blog",
	"/careers",
}

// Inputs is everything Build needs. Posts and Jobs are expected to be
// already restricted to published posts and open listings.
type Inputs struct {
	BaseURL     string
	StaticPaths []string
	Posts       []types.BlogPost
	Jobs        []types.JobListing
	Now         time.Time
}

// Build returns static entries, then one entry per post, then one per job,
// in input order. No sorting or de-duplication is applied.
func Build(in Inputs) []RouteEntry {
	base := strings.TrimRight(in.BaseURL, "/")
	entries := make([]RouteEntry, 0, len(in.StaticPaths)+len(in.Posts)+len(in.Jobs))

	for _, path := range in.StaticPaths {
		entry := RouteEntry{
			URL:             base + path,
			LastModified:    in.Now,
			ChangeFrequency: Weekly,
			Priority:        StaticPriority,
		}
		if path == rootPath || path == "" {
			entry.URL = base + rootPath
			entry.ChangeFrequency = Daily
			entry.Priority = RootPriority
		}
		entries = append(entries, entry)
	}

	for _, post := range in.Posts {
		priority := PostPriority
		if post.Featured {
			priority = FeaturedPostPriority
		}
		entries = append(entries, RouteEntry{
			URL:             base + blogPrefix + post.Slug,
			LastModified:    post.LastModified().Time,
			ChangeFrequency: Weekly,
			Priority:        priority,
		})
	}

	for _, job := range in.Jobs {
		priority := JobPriority
		if job.Featured {
			priority = FeaturedJobPriority
		}
		entries = append(entries, RouteEntry{
			URL:             base + careersPrefix + job.Slug,
			LastModified:    job.PostedAt.Time,
			ChangeFrequency: Weekly,
			Priority:        priority,
		})
	}

	return entries
}

// Catalog is the subset of the content catalog the route inventory reads.
type Catalog interface {
	PublishedPosts() ([]types.BlogPost, error)
	OpenJobs() ([]types.JobListing, error)
}

// Collect reads published posts and open job listings from catalog and
// builds the inventory. A nil staticPaths means DefaultStaticPaths. Load
// failures propagate.
func Collect(catalog Catalog, baseURL string, staticPaths []string, now time.Time) ([]RouteEntry, error) {
	if staticPaths == nil {
		staticPaths = DefaultStaticPaths
	}
	posts, err := catalog.PublishedPosts()
	if err != nil {
		return nil, err
	}
	jobs, err := catalog.OpenJobs()
	if err != nil {
		return nil, err
	}
	return Build(Inputs{
		BaseURL:     baseURL,
		StaticPaths: staticPaths,
		Posts:       posts,
		Jobs:        jobs,
		Now:         now,
	}), nil
}

// Duplicates returns URLs that occur more than once, in first-seen order.
func Duplicates(entries []RouteEntry) []string {
	seen := make(map[string]int, len(entries))
	var dups []string
	for _, e := range entries {
		seen[e.URL]++
		if seen[e.URL] == 2 {
			dups = append(dups, e.URL)
		}
	}
	return dups
}
