package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// localDateTime is the zone-less ISO layout the backend emits for
// LocalDateTime fields. Fractional seconds are optional when parsing.
const localDateTime = "2006-01-02T15:04:05.999999999"

// DisplayLayout is the human-readable form used when rendering timestamps.
const DisplayLayout = "02 Jan 2006, 15:04:05"

// Timestamp is a creation time decoded from either RFC 3339 or a zone-less
// local date-time. Zone-less values are interpreted in time.Local.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// ParseTimestamp parses s as RFC 3339, falling back to a zone-less local
// date-time read in time.Local.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localDateTime, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: unsupported format", s)
	}
	return t, nil
}

// Local formats the timestamp in loc. A zero timestamp renders as "".
func (t Timestamp) Local(loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}

// LocalDate formats only the calendar date in loc, as the admin tables show it.
func (t Timestamp) LocalDate(loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("02 Jan 2006")
}
