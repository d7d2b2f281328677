package children

import "time"

// EvaluateStatus deriva el estado a mostrar de una dosis contra "hoy".
// Función pura; debe recalcularse en cada consulta (hoy cambia afuera),
// nunca cachearse ni persistirse.
//
// Precedencia:
//  1. administrada → administered
//  2. start <= hoy <= end (ambos inclusive) → due
//  3. hoy > end → overdue
//  4. hoy < start → upcoming
func EvaluateStatus(o DoseObligation, today time.Time) DisplayStatus {
	if o.Status == DoseStatusAdministered {
		return DisplayAdministered
	}

	d := dateOnly(today)
	switch {
	case !d.Before(o.RecommendedStart) && !d.After(o.RecommendedEnd):
		return DisplayDue
	case d.After(o.RecommendedEnd):
		return DisplayOverdue
	default:
		return DisplayUpcoming
	}
}
