package children

import (
	"fmt"
	"time"
)

// CalendarEvent es el contrato de datos que consume el colaborador de
// exportación a calendario (archivo descargable o link "agregar evento").
// Cómo se renderiza es un tema de presentación, afuera de este core.
type CalendarEvent struct {
	Title string
	// Evento de día completo: [AllDayStart, AllDayEnd) con end exclusivo,
	// AllDayEnd = AllDayStart + 1 día.
	AllDayStart time.Time
	AllDayEnd   time.Time
}

// CalendarEvents arma un evento por dosis pendiente, sobre la fecha de inicio
// recomendada. Las dosis ya administradas no se exportan.
func (c Child) CalendarEvents() []CalendarEvent {
	out := make([]CalendarEvent, 0, len(c.Obligations))
	for _, o := range c.Obligations {
		if o.Status != DoseStatusPending {
			continue
		}
		out = append(out, CalendarEvent{
			Title:       fmt.Sprintf("%s dose %d", o.VaccineName, o.DoseNumber),
			AllDayStart: o.RecommendedStart,
			AllDayEnd:   o.RecommendedStart.AddDate(0, 0, 1),
		})
	}
	return out
}
