package types

// Service is an offering listed on the services pages.
type Service struct {
	Slug        string     `json:"slug" validate:"required,slug"`
	Title       string     `json:"title" validate:"required"`
	Summary     string     `json:"summary" validate:"required"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Features    []string   `json:"features,omitempty" validate:"dive,required"`
	Featured    bool       `json:"featured,omitempty"`
	PublishedAt Timestamp  `json:"publishedAt"`
	UpdatedAt   *Timestamp `json:"updatedAt,omitempty"`
}

// Key implements Record.
func (s Service) Key() string { return s.Slug }
