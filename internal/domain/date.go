package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates (project, sprint and
// timesheet dates).
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date, also accepting a full RFC 3339 timestamp
// of which only the date part is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseOptionalDate parses s when it is non-nil and non-blank.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
