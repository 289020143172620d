package content

import (
	"errors"
	"fmt"
	"io/fs"
)

// LoadError represents a backing document that is missing, unreadable or
// malformed. The whole category is unavailable.
type LoadError struct {
	Category string
	File     string
	Message  string
	Cause    error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s (%s): %s: %v", e.Category, e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s (%s): %s", e.Category, e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a record that violates a category invariant.
// The whole category is rejected.
type ValidationError struct {
	Category string
	Slug     string
	Index    int
	Field    string
	Message  string
	// Review marks violations that must be corrected by a person rather than
	// defaulted, such as a missing confidentiality level.
	Review bool
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error: %s[%d] (slug %q): %s: %s", e.Category, e.Index, e.Slug, e.Field, e.Message)
	if e.Review {
		msg += "; human review recommended"
	}
	return msg
}

// ReviewRequired reports whether a person must correct the record.
func (e *ValidationError) ReviewRequired() bool {
	return e.Review
}

// IsNotFound reports whether err stems from a missing backing document.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
