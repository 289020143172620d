package robots

import (
	"net/url"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/robotstxt"

	"github.com/jonathan/site-content/internal/content"
	"github.com/jonathan/site-content/internal/sitemap"
	"github.com/jonathan/site-content/internal/types"
)

const baseURL = "https://example.com"

// No URL in the route inventory may fall under a disallowed prefix.
func TestRouteInventory_NeverListsDisallowedPaths(t *testing.T) {
	catalog := content.NewCatalog(content.Bundled())

	entries, err := sitemap.Collect(catalog, baseURL, nil, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	d := Build(baseURL)
	for _, e := range entries {
		assert.False(t, d.Blocks(e.URL), "route %s is disallowed by robots", e.URL)
	}
}

// The rendered directives, read by a crawler's robots.txt parser, must allow
// every inventory route and block every disallowed prefix for its agent.
func TestRenderedDirectives_AgreeWithCrawlerParser(t *testing.T) {
	d := Build(baseURL)
	robots, err := robotstxt.FromString(d.String())
	require.NoError(t, err)
	assert.Equal(t, []string{baseURL + "/sitemap.xml"}, robots.Sitemaps)

	entries, err := sitemap.Collect(content.NewCatalog(content.Bundled()), baseURL, nil, time.Now())
	require.NoError(t, err)

	agents := []string{"ExampleBot", PrimaryAgent}
	for _, e := range entries {
		u, err := url.Parse(e.URL)
		require.NoError(t, err)
		for _, agent := range agents {
			assert.True(t, robots.TestAgent(u.Path, agent), "%s should allow %s", agent, u.Path)
		}
	}

	for _, rule := range d.Rules {
		agent := rule.UserAgent
		if agent == AllAgents {
			agent = "ExampleBot"
		}
		for _, prefix := range rule.Disallow {
			assert.False(t, robots.TestAgent(prefix+"page", agent), "%s should block %s", agent, prefix)
		}
	}
	assert.True(t, robots.TestAgent("/_next/static/app.js", PrimaryAgent), "the primary agent may fetch build assets")
}

func TestRouteInventory_StaticPathsAvoidDisallowedPrefixes(t *testing.T) {
	d := Build(baseURL)
	for _, path := range sitemap.DefaultStaticPaths {
		assert.False(t, d.Blocks(path), path)
	}
}

func TestRouteInventoryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	slugs := gen.SliceOf(gen.RegexMatch(`[a-z0-9]{1,10}(-[a-z0-9]{1,6}){0,2}`))

	properties.Property("generated routes are never disallowed", prop.ForAll(
		func(postSlugs, jobSlugs []string) bool {
			entries := sitemap.Build(inputs(postSlugs, jobSlugs))
			d := Build(baseURL)
			for _, e := range entries {
				if d.Blocks(e.URL) {
					return false
				}
			}
			return true
		},
		slugs, slugs,
	))

	properties.Property("one entry per static path, post and job, in that order", prop.ForAll(
		func(postSlugs, jobSlugs []string) bool {
			entries := sitemap.Build(inputs(postSlugs, jobSlugs))
			if len(entries) != len(sitemap.DefaultStaticPaths)+len(postSlugs)+len(jobSlugs) {
				return false
			}
			offset := len(sitemap.DefaultStaticPaths)
			for i, slug := range postSlugs {
				if entries[offset+i].URL != baseURL+"/blog/"+slug {
					return false
				}
			}
			offset += len(postSlugs)
			for i, slug := range jobSlugs {
				if entries[offset+i].URL != baseURL+"/careers/"+slug {
					return false
				}
			}
			return true
		},
		slugs, slugs,
	))

	properties.Property("priorities stay within [0, 1]", prop.ForAll(
		func(postSlugs, jobSlugs []string) bool {
			for _, e := range sitemap.Build(inputs(postSlugs, jobSlugs)) {
				if e.Priority < 0 || e.Priority > 1 {
					return false
				}
			}
			return true
		},
		slugs, slugs,
	))

	properties.TestingRun(t)
}

func inputs(postSlugs, jobSlugs []string) sitemap.Inputs {
	posts := make([]types.BlogPost, 0, len(postSlugs))
	for i, slug := range postSlugs {
		posts = append(posts, types.BlogPost{Slug: slug, Featured: i%2 == 0, PublishedAt: types.MustDate("2024-01-01")})
	}
	jobs := make([]types.JobListing, 0, len(jobSlugs))
	for i, slug := range jobSlugs {
		jobs = append(jobs, types.JobListing{Slug: slug, Featured: i%3 == 0, PostedAt: types.MustDate("2024-01-01")})
	}
	return sitemap.Inputs{
		BaseURL:     baseURL,
		StaticPaths: sitemap.DefaultStaticPaths,
		Posts:       posts,
		Jobs:        jobs,
		Now:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}
