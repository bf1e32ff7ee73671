package domain

import (
	"fmt"
	"strings"
	"time"
)

// iso8601Full matches the export format of the demo: ISO-8601 with
// fractional seconds, so raw JSON exports are byte-for-byte reproducible.
const iso8601Full = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a time.Time that marshals with fractional seconds and accepts
// both fractional and whole-second ISO-8601 on decode.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(iso8601Full) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp: cannot parse %q", raw)
}

// String renders the timestamp the way display fields do.
func (t Timestamp) String() string {
	return t.UTC().Format(iso8601Full)
}
