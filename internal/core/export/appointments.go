package export

import (
	"time"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

var appointmentHeaders = []string{"Cliente", "Fecha", "Hora", "Notas", "Reservado"}

// AppointmentsTable lays out appointments with dates shown in loc.
func AppointmentsTable(tenantID string, appts []models.Appointment, loc *time.Location, now time.Time) *Table {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		starts := a.StartsAt.In(loc)
		rows = append(rows, []string{
			a.Customer,
			starts.Format("2006-01-02"),
			starts.Format("15:04"),
			a.Notes,
			a.CreatedAt.In(loc).Format("2006-01-02 15:04"),
		})
	}
	return &Table{
		Title:     "Turnos " + tenantID,
		CreatedAt: now.In(loc),
		Headers:   appointmentHeaders,
		Rows:      rows,
		Style:     DefaultStyle(),
	}
}
