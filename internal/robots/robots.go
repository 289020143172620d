// Package robots builds the crawl directives served at /robots.txt.
package robots

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Agent names and well-known paths.
const (
	AllAgents     = "*"
	PrimaryAgent  = "Googlebot"
	SitemapPath   = "/sitemap.xml"
	DirectivePath = "/robots.txt"
)

// Rule is one user-agent group.
type Rule struct {
	UserAgent string
	Allow     []string
	Disallow  []string
}

// Directives is the full crawl policy plus the sitemap pointer.
type Directives struct {
	Rules   []Rule
	Sitemap string
}

// Build returns the fixed crawl policy for baseURL. The primary crawler's
// group omits the build-asset prefix that the wildcard group blocks.
func Build(baseURL string) Directives {
	return Directives{
		Rules: []Rule{
			{
				UserAgent: AllAgents,
				Allow:     []string{"/"},
				Disallow:  []string{"/api/", "/admin/", "/_next/", "/private/"},
			},
			{
				UserAgent: PrimaryAgent,
				Allow:     []string{"/"},
				Disallow:  []string{"/api/", "/admin/", "/private/"},
			},
		},
		Sitemap: strings.TrimRight(baseURL, "/") + SitemapPath,
	}
}

// DisallowedPrefixes returns every disallowed prefix across all groups,
// without duplicates, in first-seen order.
func (d Directives) DisallowedPrefixes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rule := range d.Rules {
		for _, prefix := range rule.Disallow {
			if !seen[prefix] {
				seen[prefix] = true
				out = append(out, prefix)
			}
		}
	}
	return out
}

// Blocks reports whether any group disallows rawURL. rawURL may be an
// absolute URL or a path.
func (d Directives) Blocks(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	for _, prefix := range d.DisallowedPrefixes() {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// WriteTo renders the directives in robots.txt format.
func (d Directives) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	for i, rule := range d.Rules {
		if i > 0 {
			fmt.Fprintln(cw)
		}
		fmt.Fprintf(cw, "User-agent: %s\n", rule.UserAgent)
		for _, p := range rule.Allow {
			fmt.Fprintf(cw, "Allow: %s\n", p)
		}
		for _, p := range rule.Disallow {
			fmt.Fprintf(cw, "Disallow: %s\n", p)
		}
	}
	if d.Sitemap != "" {
		fmt.Fprintf(cw, "\nSitemap: %s\n", d.Sitemap)
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// String renders the directives as text.
func (d Directives) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
