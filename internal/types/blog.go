package types

// BlogPost is an article under /blog.
type BlogPost struct {
	Slug        string     `json:"slug" validate:"required,slug"`
	Title       string     `json:"title" validate:"required"`
	Excerpt     string     `json:"excerpt" validate:"required"`
	Body        string     `json:"body,omitempty"`
	Author      string     `json:"author" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Tags        []string   `json:"tags,omitempty"`
	Image       string     `json:"image,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
	Draft       bool       `json:"draft,omitempty"`
	PublishedAt Timestamp  `json:"publishedAt"`
	UpdatedAt   *Timestamp `json:"updatedAt,omitempty"`
}

// Key implements Record.
func (p BlogPost) Key() string { return p.Slug }

// LastModified returns UpdatedAt when set, otherwise PublishedAt.
func (p BlogPost) LastModified() Timestamp {
	if p.UpdatedAt != nil && !p.UpdatedAt.IsZero() {
		return *p.UpdatedAt
	}
	return p.PublishedAt
}
