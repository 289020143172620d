package types

import (
	"bytes"
	"encoding/json"
)

// Confidentiality classifies whether a case study may be disclosed.
type Confidentiality string

const (
	// ConfidentialityPublic may be listed and rendered publicly.
	ConfidentialityPublic Confidentiality = "public"
	// ConfidentialityLimited may be referenced without client-identifying detail.
	ConfidentialityLimited Confidentiality = "limited"
	// ConfidentialityConfidential must not be disclosed.
	ConfidentialityConfidential Confidentiality = "confidential"
)

// ConfidentialityLevels lists every recognized level.
var ConfidentialityLevels = []Confidentiality{
	ConfidentialityPublic,
	ConfidentialityLimited,
	ConfidentialityConfidential,
}

// Valid reports whether c is one of the recognized levels. The empty value is
// not valid: there is no default level.
func (c Confidentiality) Valid() bool {
	for _, level := range ConfidentialityLevels {
		if c == level {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts any JSON value so that a malformed level reaches the
// confidentiality gate instead of failing decoding. Null leaves the level
// empty; non-string values keep their raw JSON text.
func (c *Confidentiality) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Confidentiality(s)
		return nil
	}
	*c = Confidentiality(data)
	return nil
}

// CaseStudy is a detailed write-up of a client engagement.
type CaseStudy struct {
	Slug            string          `json:"slug" validate:"required,slug"`
	Title           string          `json:"title" validate:"required"`
	Client          string          `json:"client" validate:"required"`
	Industry        string          `json:"industry,omitempty"`
	Summary         string          `json:"summary" validate:"required"`
	Challenge       string          `json:"challenge,omitempty"`
	Solution        string          `json:"solution,omitempty"`
	Results         []Metric        `json:"results,omitempty" validate:"dive"`
	Technologies    []string        `json:"technologies,omitempty"`
	Confidentiality Confidentiality `json:"confidentiality"`
	Featured        bool            `json:"featured,omitempty"`
	PublishedAt     Timestamp       `json:"publishedAt"`
	UpdatedAt       *Timestamp      `json:"updatedAt,omitempty"`
}

// Key implements Record.
func (c CaseStudy) Key() string { return c.Slug }
