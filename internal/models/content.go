// Package models holds the validated record types served by the content API
// and their declarative schemas. The store identifier is never part of these
// shapes; it exists only inside store documents.
package models

// Service is one offered service, addressed by its URL-friendly slug.
type Service struct {
	Title       string `json:"title" mapstructure:"title"`
	Slug        string `json:"slug" mapstructure:"slug"`
	Summary     string `json:"summary" mapstructure:"summary"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Icon        string `json:"icon,omitempty" mapstructure:"icon"`
	CoverImage  string `json:"cover_image,omitempty" mapstructure:"cover_image"`
}

// Project is a portfolio entry. Services holds Service slugs; the reference
// is loose and deliberately unenforced.
type Project struct {
	Title    string   `json:"title" mapstructure:"title"`
	Slug     string   `json:"slug" mapstructure:"slug"`
	Sector   string   `json:"sector,omitempty" mapstructure:"sector"`
	Summary  string   `json:"summary" mapstructure:"summary"`
	Body     string   `json:"body,omitempty" mapstructure:"body"`
	Location string   `json:"location,omitempty" mapstructure:"location"`
	Images   []string `json:"images" mapstructure:"images"`
	Services []string `json:"services" mapstructure:"services"`
	MapEmbed string   `json:"map_embed,omitempty" mapstructure:"map_embed"`
}

// ApplyDefaults replaces absent list fields with empty lists so they are
// always serialized as sequences.
func (p *Project) ApplyDefaults() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Services == nil {
		p.Services = []string{}
	}
}

// TeamMember is one person on the team page.
type TeamMember struct {
	Name      string `json:"name" mapstructure:"name"`
	Role      string `json:"role" mapstructure:"role"`
	Expertise string `json:"expertise,omitempty" mapstructure:"expertise"`
	Email     string `json:"email,omitempty" mapstructure:"email"`
	Phone     string `json:"phone,omitempty" mapstructure:"phone"`
	PhotoURL  string `json:"photo_url,omitempty" mapstructure:"photo_url"`
}

// Inquiry is a contact-form submission. Stored but never read back via the API.
type Inquiry struct {
	Name    string `json:"name" mapstructure:"name"`
	Email   string `json:"email" mapstructure:"email"`
	Phone   string `json:"phone,omitempty" mapstructure:"phone"`
	Subject string `json:"subject" mapstructure:"subject"`
	Message string `json:"message" mapstructure:"message"`
}
