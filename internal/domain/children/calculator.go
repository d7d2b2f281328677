package children

import (
	"sort"
	"time"

	"vaccine-reminder/internal/domain/vaccines"
)

// ComputeSchedule calcula la secuencia de dosis recomendadas para una fecha
// de nacimiento a partir de la tabla de vacunas. Función pura: mismo input,
// mismo output, sin efectos.
//
// Falla solo si alguna definición de la tabla está mal formada (precondición
// de integridad de datos, no un error de entrada del usuario).
func ComputeSchedule(table []vaccines.Definition, birthDate time.Time) ([]DoseObligation, error) {
	birth := dateOnly(birthDate)
	out := make([]DoseObligation, 0)

	for _, v := range table {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		var lastStart time.Time
		for i, rule := range v.Periods {
			var start time.Time
			if i == 0 || rule.IntervalMonths == 0 {
				// 1ra dosis, o dosis fijada por edad en meses
				start = addMonths(birth, rule.OffsetMonths)
			} else {
				// dosis encadenada a la anterior; lastStart siempre quedó
				// fijado en la vuelta previa, el offset propio se ignora
				start = addMonths(lastStart, rule.IntervalMonths)
			}

			// ventana recomendada: un mes calendario menos un día
			end := addMonths(start, 1).AddDate(0, 0, -1)

			out = append(out, DoseObligation{
				VaccineName:      v.Name,
				DoseNumber:       i + 1,
				RecommendedStart: start,
				RecommendedEnd:   end,
				Status:           DoseStatusPending,
			})
			lastStart = start
		}
	}

	// Orden estable: empates en RecommendedStart conservan el orden de
	// emisión por vacuna.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendedStart.Before(out[j].RecommendedStart)
	})

	return out, nil
}
