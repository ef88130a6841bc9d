package datetime

import (
	"fmt"
	"time"
)

var spanishWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// FormatLocal renders t for a customer, e.g. "viernes 17/10 a las 10:00".
func FormatLocal(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%s %02d/%02d a las %02d:%02d",
		spanishWeekdays[t.Weekday()], t.Day(), int(t.Month()), t.Hour(), t.Minute())
}

// FormatISO is the canonical text form used in delegate facts and API payloads.
func FormatISO(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC3339)
}
