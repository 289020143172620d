package types

// SiteConfig is the singleton holding contact details and global settings.
type SiteConfig struct {
	Name        string        `json:"name" validate:"required"`
	LegalName   string        `json:"legalName,omitempty"`
	Description string        `json:"description" validate:"required"`
	URL         string        `json:"url" validate:"required,url"`
	Email       string        `json:"email" validate:"required,email"`
	Phone       string        `json:"phone,omitempty"`
	FoundedYear int           `json:"foundedYear,omitempty" validate:"omitempty,min=1900"`
	Address     PostalAddress `json:"address"`
	Socials     []string      `json:"socials,omitempty" validate:"dive,url"`
	Hours       string        `json:"hours,omitempty"`
}

// PostalAddress is a mailing address.
type PostalAddress struct {
	Street     string `json:"street" validate:"required"`
	Locality   string `json:"locality" validate:"required"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
}
