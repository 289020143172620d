package content

import "strings"

// AllSentinel is the wire value meaning "no filter".
const AllSentinel = "all"

// Facet selects records by their category-specific facet field (project
// category, job department, ...). The zero value selects everything.
type Facet struct {
	value string
	set   bool
}

// AllFacets returns the pass-through facet.
func AllFacets() Facet {
	return Facet{}
}

// FacetOf returns a facet matching records whose facet field equals value.
func FacetOf(value string) Facet {
	return Facet{value: value, set: true}
}

// ParseFacet converts a request value into a Facet. "all" and the empty
// string both mean no filter.
func ParseFacet(s string) Facet {
	s = strings.TrimSpace(s)
	if s == "" || s == AllSentinel {
		return AllFacets()
	}
	return FacetOf(s)
}

// Value returns the selected value and whether a filter is set.
func (f Facet) Value() (string, bool) {
	return f.value, f.set
}

// IsAll reports whether f is the pass-through facet.
func (f Facet) IsAll() bool {
	return !f.set
}

func (f Facet) String() string {
	if !f.set {
		return AllSentinel
	}
	return f.value
}
