package types

// Testimonial is a client quote.
type Testimonial struct {
	ID          string    `json:"id" validate:"required,slug"`
	Author      string    `json:"author" validate:"required"`
	Role        string    `json:"role,omitempty"`
	Company     string    `json:"company,omitempty"`
	Quote       string    `json:"quote" validate:"required"`
	Rating      int       `json:"rating" validate:"min=1,max=5"`
	ProjectSlug string    `json:"projectSlug,omitempty" validate:"omitempty,slug"`
	Featured    bool      `json:"featured,omitempty"`
	PublishedAt Timestamp `json:"publishedAt"`
}

// Key implements Record.
func (t Testimonial) Key() string { return t.ID }
