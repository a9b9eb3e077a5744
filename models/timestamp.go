package models

import (
	"encoding/json"
	"log/slog"
	"time"
)

// timestampLayouts are the accepted wire formats, tried in order. RFC 3339
// covers the usual case including a trailing "Z"; the offsetless layouts
// cover servers that omit the zone designator.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Timestamp is a time.Time that decodes leniently from API payloads.
// A missing, null, or unparsable value decodes to the zero Timestamp rather
// than failing; callers that require a sortable time substitute their own
// default. It marshals as RFC 3339, or null when zero.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t in a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s against the accepted layouts. The second return
// value reports whether parsing succeeded.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("ignoring non-string timestamp", "value", string(data))
		return nil
	}
	parsed, ok := ParseTimestamp(s)
	if !ok {
		slog.Warn("failed to parse timestamp", "value", s)
		return nil
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
