package types

// JobListing is an open (or closed) position under /careers.
type JobListing struct {
	Slug             string    `json:"slug" validate:"required,slug"`
	Title            string    `json:"title" validate:"required"`
	Department       string    `json:"department" validate:"required"`
	Location         string    `json:"location" validate:"required"`
	EmploymentType   string    `json:"employmentType" validate:"required,oneof=full-time part-time contract internship"`
	Remote           bool      `json:"remote,omitempty"`
	Summary          string    `json:"summary" validate:"required"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Requirements     []string  `json:"requirements,omitempty"`
	Featured         bool      `json:"featured,omitempty"`
	Closed           bool      `json:"closed,omitempty"`
	PostedAt         Timestamp `json:"postedAt"`
}

// Key implements Record.
func (j JobListing) Key() string { return j.Slug }
