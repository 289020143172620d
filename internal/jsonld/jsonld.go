// Package jsonld builds schema.org structured-data fragments embedded in
// rendered pages. Every builder is a pure function of its inputs.
package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// SchemaContext is the vocabulary every fragment declares.
const SchemaContext = "https://schema.org"

// Fragment types.
const (
	TypeOrganization   = "Organization"
	TypeWebSite        = "WebSite"
	TypeBreadcrumbList = "BreadcrumbList"
	TypeFAQPage        = "FAQPage"
)

// Fragment is a top-level structured-data object.
type Fragment interface {
	SchemaType() string
}

// Marshal encodes f as compact JSON. The output is deterministic: field order
// follows the struct definitions.
func Marshal(f Fragment) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to encode %s fragment: %w", f.SchemaType(), err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ScriptTag returns f wrapped in an ld+json script element. HTML-significant
// characters in string values are escaped so the payload cannot close the tag.
func ScriptTag(f Fragment) (template.HTML, error) {
	data, err := Marshal(f)
	if err != nil {
		return "", err
	}
	//nolint:gosec // payload is JSON with <, > and & escaped
	return template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`), nil
}
