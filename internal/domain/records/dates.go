package records

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("date must be RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate acepta los formatos que manda la UI (datetime-local, date o RFC3339).
// Sin zona => UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
