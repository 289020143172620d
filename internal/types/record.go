package types

// Record is implemented by every content record held in a content store.
// Key is the stable identifier, unique within the record's category.
type Record interface {
	Key() string
}

// CTALink is a call-to-action attached to a record.
type CTALink struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
}

// Metric is a labelled outcome figure (e.g. "Page load time", "-62%").
type Metric struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}
