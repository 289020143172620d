package robots

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Rules(t *testing.T) {
	d := Build("https://example.com/")

	require.Len(t, d.Rules, 2)

	assert.Equal(t, Rule{
		UserAgent: "*",
		Allow:     []string{"/"},
		Disallow:  []string{"/api/", "/admin/", "/_next/", "/private/"},
	}, d.Rules[0])

	assert.Equal(t, Rule{
		UserAgent: "Googlebot",
		Allow:     []string{"/"},
		Disallow:  []string{"/api/", "/admin/", "/private/"},
	}, d.Rules[1])

	assert.Equal(t, "https://example.com/sitemap.xml", d.Sitemap)
}

func TestDisallowedPrefixes(t *testing.T) {
	assert.Equal(t, []string{"/api/", "/admin/", "/_next/", "/private/"}, Build("https://example.com").DisallowedPrefixes())
}

func TestBlocks(t *testing.T) {
	d := Build("https://example.com")

	assert.True(t, d.Blocks("/api/content"))
	assert.True(t, d.Blocks("https://example.com/_next/static/chunk.js"))
	assert.True(t, d.Blocks("https://example.com/private/"))
	assert.False(t, d.Blocks("https://example.com/"))
	assert.False(t, d.Blocks("https://example.com"))
	assert.False(t, d.Blocks("/blog/api-design"))
	assert.False(t, d.Blocks("/apis"))
}

func TestString(t *testing.T) {
	want := strings.Join([]string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /api/",
		"Disallow: /admin/",
		"Disallow: /_next/",
		"Disallow: /private/",
		"",
		"User-agent: Googlebot",
		"Allow: /",
		"Disallow: /api/",
		"Disallow: /admin/",
		"Disallow: /private/",
		"",
		"Sitemap: https://example.com/sitemap.xml",
		"",
	}, "\n")

	assert.Equal(t, want, Build("https://example.com").String())
}

func TestWriteTo_CountsBytes(t *testing.T) {
	var sb strings.Builder
	n, err := Build("https://example.com").WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo_PropagatesWriteError(t *testing.T) {
	_, err := Build("https://example.com").WriteTo(failingWriter{})
	assert.EqualError(t, err, "disk full")
}
