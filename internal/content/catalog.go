package content

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-content/internal/types"
)

// Category names. Each matches an embedded schema.
const (
	CategoryServices     = "services"
	CategoryProjects     = "projects"
	CategoryTestimonials = "testimonials"
	CategoryTeam         = "team"
	CategoryTechnologies = "technologies"
	CategoryCaseStudies  = "case-studies"
	CategoryBlog         = "blog"
	CategoryCareers      = "careers"
	CategoryFAQ          = "faq"
	CategorySite         = "site"
)

// ErrUnknownCategory is returned for a category name the catalog does not hold.
var ErrUnknownCategory = errors.New("unknown category")

// Catalog holds one store per content category plus the site config.
type Catalog struct {
	Services     *Store[types.Service]
	Projects     *Store[types.Project]
	Testimonials *Store[types.Testimonial]
	Team         *Store[types.TeamMember]
	Technologies *Store[types.Technology]
	CaseStudies  *Store[types.CaseStudy]
	Blog         *Store[types.BlogPost]
	Careers      *Store[types.JobListing]
	FAQ          *Store[types.FAQEntry]

	site *Singleton[types.SiteConfig]
}

// NewCatalog creates every store over source. Nothing is read until used.
func NewCatalog(source Source, opts ...Option) *Catalog {
	return &Catalog{
		Services: NewStore(Category[types.Service]{
			Name: CategoryServices, File: "services.json",
		}, source, opts...),
		Projects: NewStore(Category[types.Project]{
			Name: CategoryProjects, File: "projects.json",
			Facet: func(p types.Project) string { return p.Category },
		}, source, opts...),
		Testimonials: NewStore(Category[types.Testimonial]{
			Name: CategoryTestimonials, File: "testimonials.json",
		}, source, opts...),
		Team: NewStore(Category[types.TeamMember]{
			Name: CategoryTeam, File: "team.json",
			Facet: func(m types.TeamMember) string { return m.Department },
		}, source, opts...),
		Technologies: NewStore(Category[types.Technology]{
			Name: CategoryTechnologies, File: "technologies.json",
			Facet: func(t types.Technology) string { return t.Category },
		}, source, opts...),
		CaseStudies: NewStore(Category[types.CaseStudy]{
			Name: CategoryCaseStudies, File: "case-studies.json",
			Facet: func(c types.CaseStudy) string { return c.Industry },
			Gate:  ConfidentialityGate,
		}, source, opts...),
		Blog: NewStore(Category[types.BlogPost]{
			Name: CategoryBlog, File: "blog.json",
			Facet: func(p types.BlogPost) string { return p.Category },
		}, source, opts...),
		Careers: NewStore(Category[types.JobListing]{
			Name: CategoryCareers, File: "careers.json",
			Facet: func(j types.JobListing) string { return j.Department },
		}, source, opts...),
		FAQ: NewStore(Category[types.FAQEntry]{
			Name: CategoryFAQ, File: "faq.json",
			Facet: func(f types.FAQEntry) string { return f.Category },
		}, source, opts...),
		site: NewSingleton[types.SiteConfig](CategorySite, "site.json", source, opts...),
	}
}

// Site returns the site configuration singleton.
func (c *Catalog) Site() (types.SiteConfig, error) {
	return c.site.Get()
}

// Categories returns every category name in a stable order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, 10)
	for _, l := range c.loaders() {
		names = append(names, l.name)
	}
	return names
}

// Preload loads every category concurrently and returns the first failure.
func (c *Catalog) Preload(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, l := range c.loaders() {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			return l.load()
		})
	}
	return g.Wait()
}

// Count returns the number of records in the named category. The site
// singleton counts as one.
func (c *Catalog) Count(category string) (int, bool, error) {
	for _, l := range c.loaders() {
		if l.name == category {
			n, err := l.count()
			return n, true, err
		}
	}
	return 0, false, nil
}

// ListCategory returns the records of the named category matching facet as
// the category's typed slice. The site category returns the site config.
func (c *Catalog) ListCategory(category string, facet Facet) (any, error) {
	l, err := c.loader(category)
	if err != nil {
		return nil, err
	}
	return l.list(facet)
}

// GetRecord returns one record of the named category by slug. ok is false
// when the slug is unknown or the category has no keyed records.
func (c *Catalog) GetRecord(category, slug string) (record any, ok bool, err error) {
	l, err := c.loader(category)
	if err != nil {
		return nil, false, err
	}
	if l.get == nil {
		return nil, false, nil
	}
	return l.get(slug)
}

func (c *Catalog) loader(category string) (loader, error) {
	for _, l := range c.loaders() {
		if l.name == category {
			return l, nil
		}
	}
	return loader{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// PublishedPosts returns blog posts that are not drafts.
func (c *Catalog) PublishedPosts() ([]types.BlogPost, error) {
	return c.Blog.Where(func(p types.BlogPost) bool { return !p.Draft })
}

// OpenJobs returns job listings that are still accepting applications.
func (c *Catalog) OpenJobs() ([]types.JobListing, error) {
	return c.Careers.Where(func(j types.JobListing) bool { return !j.Closed })
}

// FAQEntries returns every FAQ entry in document order.
func (c *Catalog) FAQEntries() ([]types.FAQEntry, error) {
	return c.FAQ.Load()
}

// PageTitles maps the paths of record-backed pages (services, published
// posts, open listings) to their titles.
func (c *Catalog) PageTitles() (map[string]string, error) {
	titles := make(map[string]string)

	services, err := c.Services.Load()
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		titles["/services/"+svc.Slug] = svc.Title
	}

	posts, err := c.PublishedPosts()
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		titles["/blog/"+p.Slug] = p.Title
	}

	jobs, err := c.OpenJobs()
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		titles["/careers/"+j.Slug] = j.Title
	}
	return titles, nil
}

// PublicCaseStudies returns the case studies cleared for public listing.
func (c *Catalog) PublicCaseStudies() ([]types.CaseStudy, error) {
	return c.CaseStudies.Where(func(cs types.CaseStudy) bool {
		return cs.Confidentiality == types.ConfidentialityPublic
	})
}

type loader struct {
	name  string
	load  func() error
	count func() (int, error)
	list  func(Facet) (any, error)
	get   func(slug string) (any, bool, error)
}

func storeLoader[T types.Record](s *Store[T]) loader {
	return loader{
		name: s.Name(),
		load: func() error {
			_, _, err := s.snapshot()
			return err
		},
		count: func() (int, error) {
			records, _, err := s.snapshot()
			return len(records), err
		},
		list: func(f Facet) (any, error) {
			return s.List(f)
		},
		get: func(slug string) (any, bool, error) {
			return s.Get(slug)
		},
	}
}

func (c *Catalog) loaders() []loader {
	return []loader{
		storeLoader(c.Services),
		storeLoader(c.Projects),
		storeLoader(c.Testimonials),
		storeLoader(c.Team),
		storeLoader(c.Technologies),
		storeLoader(c.CaseStudies),
		storeLoader(c.Blog),
		storeLoader(c.Careers),
		storeLoader(c.FAQ),
		{
			name: c.site.Name(),
			load: func() error {
				_, err := c.site.Get()
				return err
			},
			count: func() (int, error) {
				_, err := c.site.Get()
				if err != nil {
					return 0, err
				}
				return 1, nil
			},
			list: func(Facet) (any, error) {
				return c.site.Get()
			},
		},
	}
}
