package jsonld

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Embedded is a structured-data script found in a rendered page.
type Embedded struct {
	Type string
	Raw  json.RawMessage
}

// Extract returns every ld+json script in an HTML document, in document
// order. A script whose body is not valid JSON is an error.
func Extract(r io.Reader) ([]Embedded, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var (
		out     []Embedded
		scanErr error
	)
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		body := strings.TrimSpace(s.Text())
		var head struct {
			Type string `json:"@type"`
		}
		if err := json.Unmarshal([]byte(body), &head); err != nil {
			scanErr = fmt.Errorf("structured-data script %d is not valid JSON: %w", i, err)
			return false
		}
		out = append(out, Embedded{Type: head.Type, Raw: json.RawMessage(body)})
		return true
	})
	if scanErr != nil {
		return nil, scanErr
	}
	return out, nil
}
