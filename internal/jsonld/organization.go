package jsonld

import (
	"strconv"
	"strings"

	"github.com/jonathan/site-content/internal/types"
)

// Identity holds the fixed site identity constants not stored in the site
// config document.
type Identity struct {
	LogoPath    string
	Language    string
	ContactType string
}

// DefaultIdentity is used by the CLI and server.
var DefaultIdentity = Identity{
	LogoPath:    "/logo.png",
	Language:    "en-US",
	ContactType: "customer service",
}

// Organization is the Organization fragment.
type Organization struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name"`
	LegalName    string         `json:"legalName,omitempty"`
	URL          string         `json:"url"`
	Logo         string         `json:"logo"`
	Description  string         `json:"description"`
	Email        string         `json:"email"`
	Telephone    string         `json:"telephone,omitempty"`
	FoundingDate string         `json:"foundingDate,omitempty"`
	Address      PostalAddress  `json:"address"`
	ContactPoint []ContactPoint `json:"contactPoint"`
	SameAs       []string       `json:"sameAs,omitempty"`
}

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// ContactPoint is a schema.org ContactPoint.
type ContactPoint struct {
	Type              string `json:"@type"`
	ContactType       string `json:"contactType"`
	Email             string `json:"email"`
	Telephone         string `json:"telephone,omitempty"`
	AvailableLanguage string `json:"availableLanguage,omitempty"`
}

// SchemaType implements Fragment.
func (Organization) SchemaType() string { return TypeOrganization }

// WebSite is the WebSite fragment.
type WebSite struct {
	Context     string    `json:"@context"`
	Type        string    `json:"@type"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	InLanguage  string    `json:"inLanguage"`
	Publisher   Publisher `json:"publisher"`
}

// Publisher references the organization behind a WebSite.
type Publisher struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SchemaType implements Fragment.
func (WebSite) SchemaType() string { return TypeWebSite }

// NewOrganization builds the Organization fragment from the site config.
func NewOrganization(site types.SiteConfig, id Identity) Organization {
	base := strings.TrimRight(site.URL, "/")
	org := Organization{
		Context:     SchemaContext,
		Type:        TypeOrganization,
		Name:        site.Name,
		LegalName:   site.LegalName,
		URL:         base,
		Logo:        base + id.LogoPath,
		Description: site.Description,
		Email:       site.Email,
		Telephone:   site.Phone,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   site.Address.Street,
			AddressLocality: site.Address.Locality,
			AddressRegion:   site.Address.Region,
			PostalCode:      site.Address.PostalCode,
			AddressCountry:  site.Address.Country,
		},
		ContactPoint: []ContactPoint{{
			Type:              "ContactPoint",
			ContactType:       id.ContactType,
			Email:             site.Email,
			Telephone:         site.Phone,
			AvailableLanguage: id.Language,
		}},
		SameAs: site.Socials,
	}
	if site.FoundedYear > 0 {
		org.FoundingDate = strconv.Itoa(site.FoundedYear)
	}
	return org
}

// NewWebSite builds the WebSite fragment from the site config.
func NewWebSite(site types.SiteConfig, id Identity) WebSite {
	base := strings.TrimRight(site.URL, "/")
	return WebSite{
		Context:     SchemaContext,
		Type:        TypeWebSite,
		Name:        site.Name,
		URL:         base,
		Description: site.Description,
		InLanguage:  id.Language,
		Publisher:   Publisher{Type: TypeOrganization, Name: site.Name, URL: base},
	}
}
