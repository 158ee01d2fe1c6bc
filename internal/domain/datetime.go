package domain

import (
	"strings"
	"time"
)

// DateTimeLayout is the wire layout of every date and time in the API (no zone).
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a time.Time that marshals to and from DateTimeLayout.
type DateTime struct {
	time.Time
}

// NewDateTime truncates t to whole seconds, the precision of the wire format.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second)}
}

// ParseDateTime parses s using DateTimeLayout in the local zone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, strings.TrimSpace(s), time.Local)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
