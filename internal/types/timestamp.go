// Package types provides the content record definitions shared by the content
// stores, the artifact builders and the HTTP surface.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted in backing documents and
// emitted in the sitemap.
const DateLayout = "2006-01-02"

// Timestamp is a point in time decoded from either a calendar date
// ("2024-01-02") or a full RFC 3339 timestamp.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MustDate parses a calendar date and panics on failure. Intended for fixtures.
func MustDate(value string) Timestamp {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(fmt.Sprintf("invalid date %q: %v", value, err))
	}
	return Timestamp{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, DateLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

// MarshalJSON implements json.Marshaler. Midnight UTC values round-trip as
// calendar dates.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// String returns the date form when there is no time-of-day component.
func (t Timestamp) String() string {
	utc := t.UTC()
	if utc.Hour() == 0 && utc.Minute() == 0 && utc.Second() == 0 && utc.Nanosecond() == 0 {
		return utc.Format(DateLayout)
	}
	return t.Format(time.RFC3339)
}
