package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"date", `"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2024-03-01T10:30:00Z"`, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", `"2024-03-01T10:30:00.5Z"`, time.Date(2024, 3, 1, 10, 30, 0, 500000000, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_UnmarshalErrors(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`20240301`), &ts))
}

func TestTimestamp_NullLeavesZero(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestamp_Marshal(t *testing.T) {
	data, err := json.Marshal(MustDate("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	data, err = json.Marshal(NewTimestamp(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:30:00Z"`, string(data))
}

func TestMustDate_Panics(t *testing.T) {
	assert.Panics(t, func() { MustDate("03/01/2024") })
}

func TestBlogPost_LastModified(t *testing.T) {
	post := BlogPost{PublishedAt: MustDate("2024-01-10")}
	assert.Equal(t, "2024-01-10", post.LastModified().String())

	updated := MustDate("2024-02-20")
	post.UpdatedAt = &updated
	assert.Equal(t, "2024-02-20", post.LastModified().String())

	post.UpdatedAt = &Timestamp{}
	assert.Equal(t, "2024-01-10", post.LastModified().String())
}
