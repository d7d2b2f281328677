package children

import "time"

// addMonths suma meses calendario con ajuste de día: si el día no existe en
// el mes destino (31 ene + 1 mes), devuelve el último día válido de ese mes.
// time.AddDate normaliza hacia adelante (31 ene + 1m = 2/3 mar), que NO es la
// semántica que queremos para fechas recomendadas.
func addMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	month := time.Month(total%12 + 1)
	if total < 0 {
		// división con piso para offsets negativos (no ocurre con la tabla
		// actual, pero evita sorpresas)
		year = t.Year() + (total-11)/12
		month = time.Month((total%12+12)%12 + 1)
	}

	day := t.Day()
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) int {
	// día 0 del mes siguiente = último día de este mes
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOnly trunca a medianoche UTC. Todas las fechas del dominio son fechas
// de calendario, sin componente horario.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween devuelve b - a en días de calendario (negativo si b < a).
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
