package types

// TeamMember is a person shown on the about page.
type TeamMember struct {
	Slug        string      `json:"slug" validate:"required,slug"`
	Name        string      `json:"name" validate:"required"`
	Role        string      `json:"role" validate:"required"`
	Department  string      `json:"department,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	Avatar      string      `json:"avatar,omitempty"`
	Socials     SocialLinks `json:"socials,omitempty"`
	Featured    bool        `json:"featured,omitempty"`
	PublishedAt Timestamp   `json:"publishedAt"`
	UpdatedAt   *Timestamp  `json:"updatedAt,omitempty"`
}

// SocialLinks holds optional profile URLs.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" validate:"omitempty,url"`
	Twitter  string `json:"twitter,omitempty" validate:"omitempty,url"`
}

// Key implements Record.
func (m TeamMember) Key() string { return m.Slug }
