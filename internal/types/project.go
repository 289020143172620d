package types

// Project is a portfolio entry.
type Project struct {
	Slug         string     `json:"slug" validate:"required,slug"`
	Title        string     `json:"title" validate:"required"`
	Client       string     `json:"client,omitempty"`
	Category     string     `json:"category" validate:"required"`
	Summary      string     `json:"summary" validate:"required"`
	Image        string     `json:"image,omitempty"`
	URL          string     `json:"url,omitempty" validate:"omitempty,url"`
	Technologies []string   `json:"technologies,omitempty"`
	Featured     bool       `json:"featured,omitempty"`
	PublishedAt  Timestamp  `json:"publishedAt"`
	UpdatedAt    *Timestamp `json:"updatedAt,omitempty"`
}

// Key implements Record.
func (p Project) Key() string { return p.Slug }
