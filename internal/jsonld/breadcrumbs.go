package jsonld

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbList is the BreadcrumbList fragment.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one positioned element of a BreadcrumbList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// SchemaType implements Fragment.
func (BreadcrumbList) SchemaType() string { return TypeBreadcrumbList }

// Breadcrumbs builds a BreadcrumbList with 1-based positions in trail order.
func Breadcrumbs(trail []Crumb) BreadcrumbList {
	items := make([]ListItem, 0, len(trail))
	for i, c := range trail {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     c.URL,
		})
	}
	return BreadcrumbList{Context: SchemaContext, Type: TypeBreadcrumbList, ItemListElement: items}
}

// TrailForPath derives a trail from a URL path: Home, then one crumb per
// segment. titles overrides the display name of a segment path
// (e.g. "/blog/go-services" -> "Go services"); otherwise the segment is
// title-cased with hyphens as spaces.
func TrailForPath(baseURL, path string, titles map[string]string) []Crumb {
	base := strings.TrimRight(baseURL, "/")
	trail := []Crumb{{Name: "Home", URL: base + "/"}}

	current := ""
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" {
			continue
		}
		current += "/" + segment
		name, ok := titles[current]
		if !ok {
			name = humanize(segment)
		}
		trail = append(trail, Crumb{Name: name, URL: base + current})
	}
	return trail
}

// humanize upper-cases the first letter of each hyphen-separated word and
// leaves the rest untouched. A Caser is not safe for concurrent use.
func humanize(segment string) string {
	words := strings.Join(strings.Fields(strings.ReplaceAll(segment, "-", " ")), " ")
	return cases.Title(language.Und, cases.NoLower).String(words)
}
