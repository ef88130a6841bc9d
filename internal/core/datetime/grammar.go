package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
)

const weekdayAlternation = `(lunes|martes|miercoles|jueves|viernes|sabado|domingo)`

// isoWeekdays uses ISO numbering, Monday = 1 ... Sunday = 7.
var isoWeekdays = map[string]int{
	"lunes": 1, "martes": 2, "miercoles": 3, "jueves": 4, "viernes": 5, "sabado": 6, "domingo": 7,
}

// dayPhrase is one supported way of naming the day. Patterns run on canonical text.
type dayPhrase struct {
	name    string
	pattern *regexp.Regexp
	next    bool
}

var dayPhrases = []dayPhrase{
	{name: "proximo-weekday", pattern: regexp.MustCompile(`\b(?:el\s+)?proximo\s+` + weekdayAlternation + `\b`), next: true},
	{name: "weekday-proximo", pattern: regexp.MustCompile(`\b` + weekdayAlternation + `\s+(?:proximo|que\s+viene)\b`), next: true},
	{name: "weekday", pattern: regexp.MustCompile(`\b` + weekdayAlternation + `\b`)},
}

const meridiem = `(?:\s*(am|pm|a\.m\.|p\.m\.|hs|h|de\s+la\s+(?:manana|tarde|noche)))?`

// Minutes follow ":" or ".", as in "10:30" or "9.30".
var (
	explicitClock = regexp.MustCompile(`\ba\s+las?\s+(\d{1,2})(?:[:.](\d{2}))?` + meridiem + `(?:\D|$)`)
	bareClock     = regexp.MustCompile(`\b(\d{1,2})(?:[:.](\d{2}))?` + meridiem + `(?:\D|$)`)
)

// WeekdayPhrase is the parsed form of a relative weekday expression.
type WeekdayPhrase struct {
	Weekday int // ISO, 1..7
	Next    bool
	Hour    int
	Minute  int
}

// ParseWeekdayPhrase recognizes "lunes a las 15", "el próximo martes 10:30",
// "viernes que viene a las 7 de la tarde" and similar phrasings.
func ParseWeekdayPhrase(text string) (WeekdayPhrase, bool) {
	s := textnorm.Normalize(text)

	for _, phrase := range dayPhrases {
		loc := phrase.pattern.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		day := s[loc[2]:loc[3]]
		hour, minute, ok := parseClock(s[loc[1]:])
		if !ok {
			// "a las 10 el viernes"
			hour, minute, ok = parseClock(s[:loc[0]])
		}
		if !ok {
			return WeekdayPhrase{}, false
		}
		return WeekdayPhrase{Weekday: isoWeekdays[day], Next: phrase.next, Hour: hour, Minute: minute}, true
	}
	return WeekdayPhrase{}, false
}

// parseClock prefers an explicit "a las HH[:MM]" over the first bare number.
// Numbers that belong to a date such as "16/10" are never read as a time.
func parseClock(s string) (int, int, bool) {
	m := firstClock(explicitClock, s)
	if m == nil {
		m = firstClock(bareClock, s)
	}
	if m == nil {
		return 0, 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	suffix := strings.Join(strings.Fields(m[3]), " ")
	switch suffix {
	case "pm", "p.m.", "de la tarde", "de la noche":
		if hour < 12 {
			hour += 12
		}
	case "am", "a.m.":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// firstClock returns the submatches of the first match of re that is not part
// of a date.
func firstClock(re *regexp.Regexp, s string) []string {
	for _, idx := range re.FindAllStringSubmatchIndex(s, -1) {
		start, end := idx[2], idx[3]
		if idx[4] >= 0 {
			end = idx[5]
		}
		if (start > 0 && isDateSeparator(s[start-1])) || (end < len(s) && isDateSeparator(s[end])) {
			continue
		}

		m := make([]string, 4)
		for g := range m {
			if idx[2*g] >= 0 {
				m[g] = s[idx[2*g]:idx[2*g+1]]
			}
		}
		return m
	}
	return nil
}

func isDateSeparator(b byte) bool {
	return b == '/' || b == '-'
}

// NextOccurrence returns the instant p refers to, strictly after now, in loc.
// A weekday equal to today's means next week's, and the "next" modifier adds
// another week.
func NextOccurrence(p WeekdayPhrase, now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)

	today := int(now.Weekday())
	if today == 0 {
		today = 7
	}
	offset := (p.Weekday - today + 7) % 7
	if offset == 0 {
		offset = 7
	}
	if p.Next {
		offset += 7
	}

	day := now.AddDate(0, 0, offset)
	at := time.Date(day.Year(), day.Month(), day.Day(), p.Hour, p.Minute, 0, 0, loc)
	if !at.After(now) {
		at = at.AddDate(0, 0, 7)
	}
	return at
}
