package types

// Technology is an entry on the technologies page.
type Technology struct {
	Slug        string    `json:"slug" validate:"required,slug"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	PublishedAt Timestamp `json:"publishedAt"`
}

// Key implements Record.
func (t Technology) Key() string { return t.Slug }
