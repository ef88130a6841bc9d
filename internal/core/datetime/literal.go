// Package datetime turns free-text date expressions into instants in the
// tenant's timezone: literal timestamps first, then Spanish weekday phrases,
// then an optional external fallback.
package datetime

import (
	"strings"
	"time"
)

// literalLayouts are tried in order after the first "T" separator is replaced by a space.
var literalLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05 Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseLiteral reads a well-formed SQL/ISO-8601 timestamp. Values without an
// offset are interpreted in loc.
func ParseLiteral(text string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	s = strings.Replace(s, "T", " ", 1)

	for _, layout := range literalLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
