package jsonld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-content/internal/content"
)

func TestFragments_FromBundledContent(t *testing.T) {
	catalog := content.NewCatalog(content.Bundled())

	site, err := catalog.Site()
	require.NoError(t, err)
	org := NewOrganization(site, DefaultIdentity)
	assert.Equal(t, "Northwind Digital", org.Name)
	assert.Equal(t, "https://northwind.dev/logo.png", org.Logo)
	assert.Equal(t, "2016", org.FoundingDate)
	assert.Equal(t, "CA", org.Address.AddressCountry)

	entries, err := catalog.FAQ.Load()
	require.NoError(t, err)
	page := FAQ(entries)
	require.Len(t, page.MainEntity, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Question, page.MainEntity[i].Name)
		if e.CTALink != nil {
			assert.Equal(t, e.Answer+" "+e.CTALink.Label, page.MainEntity[i].AcceptedAnswer.Text)
		} else {
			assert.Equal(t, e.Answer, page.MainEntity[i].AcceptedAnswer.Text)
		}
	}
}
