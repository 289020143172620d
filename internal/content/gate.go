package content

import (
	"fmt"

	"github.com/jonathan/site-content/internal/types"
)

// ConfidentialityGate rejects the case-study category unless every record
// declares a recognized confidentiality level. There is no default level.
func ConfidentialityGate(category string, records []types.CaseStudy) error {
	for i, study := range records {
		if study.Confidentiality.Valid() {
			continue
		}
		msg := "confidentiality level is missing"
		if study.Confidentiality != "" {
			msg = fmt.Sprintf("unrecognized confidentiality level %q (want one of %v)",
				study.Confidentiality, types.ConfidentialityLevels)
		}
		return &ValidationError{
			Category: category,
			Slug:     study.Slug,
			Index:    i,
			Field:    "confidentiality",
			Message:  msg,
			Review:   true,
		}
	}
	return nil
}
