package content

import (
	"errors"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-content/internal/schemas"
	"github.com/jonathan/site-content/internal/types"
)

// fixtureSource builds a read-counting source over in-memory documents.
func fixtureSource(files map[string]string) *CountingSource {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return NewCountingSource(FSSource{FS: fsys})
}

const caseStudiesOK = `[
	{"slug": "alpha", "title": "Alpha", "client": "A Co", "industry": "retail", "summary": "s", "confidentiality": "public", "publishedAt": "2024-01-01"},
	{"slug": "beta", "title": "Beta", "client": "B Co", "industry": "finance", "summary": "s", "confidentiality": "limited", "publishedAt": "2024-01-02"},
	{"slug": "gamma", "title": "Gamma", "client": "C Co", "industry": "retail", "summary": "s", "confidentiality": "confidential", "publishedAt": "2024-01-03"}
]`

func TestCaseStudies_AllClassified_Loads(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}))

	studies, err := catalog.CaseStudies.Load()
	require.NoError(t, err)
	require.Len(t, studies, 3)
	assert.Equal(t, "alpha", studies[0].Slug)
	assert.Equal(t, types.ConfidentialityConfidential, studies[2].Confidentiality)
}

func TestCaseStudies_MissingConfidentiality_FailsWholeCategory(t *testing.T) {
	doc := `[
		{"slug": "alpha", "title": "Alpha", "client": "A", "summary": "s", "confidentiality": "public", "publishedAt": "2024-01-01"},
		{"slug": "beta", "title": "Beta", "client": "B", "summary": "s", "publishedAt": "2024-01-02"},
		{"slug": "gamma", "title": "Gamma", "client": "C", "summary": "s", "confidentiality": "public", "publishedAt": "2024-01-03"}
	]`
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": doc}))

	studies, err := catalog.CaseStudies.Load()
	require.Error(t, err)
	assert.Nil(t, studies)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "error should be ValidationError type")
	assert.Equal(t, CategoryCaseStudies, verr.Category)
	assert.Equal(t, "beta", verr.Slug)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "confidentiality", verr.Field)
	assert.True(t, verr.Review)
	assert.Contains(t, err.Error(), "human review recommended")
	assert.Contains(t, err.Error(), `"beta"`)

	// No record from the category is reachable, including valid ones.
	_, ok, err := catalog.CaseStudies.Get("alpha")
	require.Error(t, err)
	assert.False(t, ok)
	_, err = catalog.PublicCaseStudies()
	require.Error(t, err)
	assert.False(t, catalog.CaseStudies.Loaded())
}

func TestCaseStudies_NonStringConfidentiality_ReachesGate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"null", `null`, "confidentiality level is missing"},
		{"number", `3`, `"3"`},
		{"boolean", `true`, `"true"`},
		{"object", `{"level": "public"}`, "unrecognized confidentiality level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `[
				{"slug": "alpha", "title": "Alpha", "client": "A", "summary": "s", "confidentiality": "public", "publishedAt": "2024-01-01"},
				{"slug": "beta", "title": "Beta", "client": "B", "summary": "s", "confidentiality": ` + tt.value + `, "publishedAt": "2024-01-02"}
			]`
			catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": doc}))

			_, err := catalog.CaseStudies.Load()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, "beta", verr.Slug)
			assert.Equal(t, "confidentiality", verr.Field)
			assert.True(t, verr.ReviewRequired())
			assert.Contains(t, verr.Message, tt.message)
			assert.Contains(t, err.Error(), "human review recommended")
		})
	}
}

func TestCaseStudies_UnrecognizedConfidentiality_FailsWholeCategory(t *testing.T) {
	doc := `[
		{"slug": "alpha", "title": "Alpha", "client": "A", "summary": "s", "confidentiality": "secret", "publishedAt": "2024-01-01"},
		{"slug": "beta", "title": "Beta", "client": "B", "summary": "s", "publishedAt": "2024-01-02"}
	]`
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": doc}))

	_, err := catalog.CaseStudies.Load()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "alpha", verr.Slug, "first violation wins")
	assert.Equal(t, 0, verr.Index)
	assert.Contains(t, verr.Message, `"secret"`)
}

func TestCaseStudies_ConfidentialityIsCaseSensitive(t *testing.T) {
	doc := `[{"slug": "alpha", "title": "Alpha", "client": "A", "summary": "s", "confidentiality": "Public", "publishedAt": "2024-01-01"}]`
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": doc}))

	_, err := catalog.CaseStudies.Load()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestStore_FailedLoadIsRetried(t *testing.T) {
	src := fixtureSource(map[string]string{"faq.json": `{ invalid json }`})
	catalog := NewCatalog(src)

	_, err := catalog.FAQ.Load()
	require.Error(t, err)
	_, err = catalog.FAQ.Load()
	require.Error(t, err)

	assert.Equal(t, 2, src.Reads("faq.json"), "nothing is cached after a failure")
}

func TestStore_ListAllMatchesLoad(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}))

	loaded, err := catalog.CaseStudies.Load()
	require.NoError(t, err)

	all, err := catalog.CaseStudies.List(AllFacets())
	require.NoError(t, err)
	assert.Equal(t, loaded, all)

	sentinel, err := catalog.CaseStudies.List(ParseFacet("all"))
	require.NoError(t, err)
	assert.Equal(t, loaded, sentinel)
}

func TestStore_ListByFacet(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}))

	retail, err := catalog.CaseStudies.List(FacetOf("retail"))
	require.NoError(t, err)
	require.Len(t, retail, 2)
	assert.Equal(t, "alpha", retail[0].Slug)
	assert.Equal(t, "gamma", retail[1].Slug)

	none, err := catalog.CaseStudies.List(FacetOf("aerospace"))
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestStore_ListByFacet_CategoryWithoutFacet(t *testing.T) {
	doc := `[{"slug": "web", "title": "Web", "summary": "s", "publishedAt": "2024-01-01"}]`
	catalog := NewCatalog(fixtureSource(map[string]string{"services.json": doc}))

	filtered, err := catalog.Services.List(FacetOf("anything"))
	require.NoError(t, err)
	assert.Empty(t, filtered)

	all, err := catalog.Services.List(AllFacets())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ListDoesNotMutateCache(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}))

	first, err := catalog.CaseStudies.Load()
	require.NoError(t, err)
	first[0].Title = "changed"
	first = first[:1]

	again, err := catalog.CaseStudies.Load()
	require.NoError(t, err)
	require.Len(t, again, 3)
	assert.Equal(t, "Alpha", again[0].Title)
}

func TestStore_GetConsistentWithList(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}))

	all, err := catalog.CaseStudies.List(AllFacets())
	require.NoError(t, err)
	for _, study := range all {
		got, ok, err := catalog.CaseStudies.Get(study.Slug)
		require.NoError(t, err)
		require.True(t, ok, study.Slug)
		assert.Equal(t, study, got)
	}
}

func TestStore_GetUnknownSlug(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}))

	got, ok, err := catalog.CaseStudies.Get("does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, types.CaseStudy{}, got)
}

func TestStore_Idempotent_ReadsOnce(t *testing.T) {
	src := fixtureSource(map[string]string{"case-studies.json": caseStudiesOK})
	catalog := NewCatalog(src)

	first, err := catalog.CaseStudies.Load()
	require.NoError(t, err)
	second, err := catalog.CaseStudies.Load()
	require.NoError(t, err)
	_, _, err = catalog.CaseStudies.Get("beta")
	require.NoError(t, err)
	_, err = catalog.CaseStudies.List(FacetOf("retail"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.Reads("case-studies.json"))
	assert.True(t, catalog.CaseStudies.Loaded())
}

func TestStore_ConcurrentFirstAccess_ParsesOnce(t *testing.T) {
	src := fixtureSource(map[string]string{"case-studies.json": caseStudiesOK})
	catalog := NewCatalog(src)

	const workers = 32
	var wg sync.WaitGroup
	results := make([][]types.CaseStudy, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = catalog.CaseStudies.Load()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 3)
	}
	assert.Equal(t, 1, src.Reads("case-studies.json"))
}

func TestStore_MissingDocument(t *testing.T) {
	catalog := NewCatalog(fixtureSource(nil))

	_, err := catalog.Blog.Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Equal(t, CategoryBlog, loadErr.Category)
	assert.Equal(t, "blog.json", loadErr.File)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestStore_MalformedDocument(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"blog.json": `[{"slug": `}))

	_, err := catalog.Blog.Load()
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "malformed")
	assert.False(t, IsNotFound(err))
}

func TestStore_SchemaViolation(t *testing.T) {
	doc := `[{"slug": "a", "title": "A", "publishedAt": "2024-01-01"}]`
	catalog := NewCatalog(fixtureSource(map[string]string{"blog.json": doc}))

	_, err := catalog.Blog.Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	var schemaErr *schemas.ValidationError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, CategoryBlog, schemaErr.Schema)
}

func TestStore_BadTimestamp(t *testing.T) {
	doc := `[{"slug": "a", "title": "A", "excerpt": "e", "author": "x", "category": "c", "publishedAt": "2024-13-45"}]`
	catalog := NewCatalog(fixtureSource(map[string]string{"blog.json": doc}))

	_, err := catalog.Blog.Load()
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestStore_RecordRuleViolation(t *testing.T) {
	doc := `[
		{"slug": "ok", "author": "A", "quote": "q", "rating": 5, "publishedAt": "2024-01-01", "id": "ok"},
		{"id": "too-generous", "author": "B", "quote": "q", "rating": 7, "publishedAt": "2024-01-01"}
	]`
	catalog := NewCatalog(fixtureSource(map[string]string{"testimonials.json": doc}))

	_, err := catalog.Testimonials.Load()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "too-generous", verr.Slug)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "rating", verr.Field)
	assert.False(t, verr.Review)
	assert.NotContains(t, err.Error(), "human review")
}

func TestStore_InvalidSlugFormat(t *testing.T) {
	doc := `[{"slug": "Not A Slug", "name": "Go", "category": "backend", "publishedAt": "2024-01-01"}]`
	catalog := NewCatalog(fixtureSource(map[string]string{"technologies.json": doc}))

	_, err := catalog.Technologies.Load()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "slug", verr.Field)
	assert.Contains(t, verr.Message, "slug")
}

func TestStore_DuplicateSlug(t *testing.T) {
	doc := `[
		{"slug": "go", "name": "Go", "category": "backend", "publishedAt": "2024-01-01"},
		{"slug": "react", "name": "React", "category": "frontend", "publishedAt": "2024-01-01"},
		{"slug": "go", "name": "Golang", "category": "backend", "publishedAt": "2024-01-01"}
	]`
	catalog := NewCatalog(fixtureSource(map[string]string{"technologies.json": doc}))

	_, err := catalog.Technologies.Load()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "go", verr.Slug)
	assert.Equal(t, 2, verr.Index)
	assert.Contains(t, verr.Message, "duplicate of record 0")
}

func TestStore_EmptyCategory(t *testing.T) {
	catalog := NewCatalog(fixtureSource(map[string]string{"careers.json": `[]`}))

	jobs, err := catalog.Careers.Load()
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.NotNil(t, jobs)
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  []error
}

func (r *recordingObserver) ObserveLoad(category string, _ int, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, category)
	r.errs = append(r.errs, err)
}

func TestStore_ObserverSeesEveryAttempt(t *testing.T) {
	obs := &recordingObserver{}
	catalog := NewCatalog(fixtureSource(map[string]string{"case-studies.json": caseStudiesOK}), WithObserver(obs))

	_, err := catalog.CaseStudies.Load()
	require.NoError(t, err)
	_, err = catalog.Blog.Load()
	require.Error(t, err)
	_, err = catalog.CaseStudies.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{CategoryCaseStudies, CategoryBlog}, obs.calls)
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])
}
