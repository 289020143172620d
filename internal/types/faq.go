package types

// FAQEntry is a question and answer shown on the FAQ sections.
type FAQEntry struct {
	ID          string    `json:"id" validate:"required,slug"`
	Question    string    `json:"question" validate:"required"`
	Answer      string    `json:"answer" validate:"required"`
	Category    string    `json:"category,omitempty"`
	CTALink     *CTALink  `json:"ctaLink,omitempty"`
	PublishedAt Timestamp `json:"publishedAt"`
}

// Key implements Record.
func (f FAQEntry) Key() string { return f.ID }
