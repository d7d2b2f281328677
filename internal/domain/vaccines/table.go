package vaccines

// Default devuelve la tabla maestra del calendario infantil.
//
// Los offsets están en meses desde el nacimiento. Cuando una dosis depende de
// la anterior (p.ej. varicela 2da dosis: 3 meses después de la 1ra), se usa
// IntervalMonths y el offset queda solo como referencia documental.
func Default() []Definition {
	return []Definition{
		{
			Name:        "Hepatitis B",
			DoseCount:   3,
			Periods:     []PeriodRule{{2, 0}, {3, 0}, {7, 0}},
			Description: "Previene la enfermedad hepática causada por el virus de la hepatitis B. Recomendada para todos los niños.",
		},
		{
			Name:        "Rotavirus",
			DoseCount:   2, // según la marca de vacuna pueden ser 2 o 3 dosis
			Periods:     []PeriodRule{{2, 0}, {3, 0}},
			Description: "Previene la gastroenteritis grave por rotavirus. Es una vacuna oral.",
		},
		{
			Name:        "Hib",
			DoseCount:   4,
			Periods:     []PeriodRule{{2, 0}, {3, 0}, {4, 0}, {12, 0}},
			Description: "Previene enfermedades graves como la meningitis bacteriana causada por Haemophilus influenzae tipo b.",
		},
		{
			Name:        "Neumococo pediátrico",
			DoseCount:   4,
			Periods:     []PeriodRule{{2, 0}, {3, 0}, {4, 0}, {12, 0}},
			Description: "Previene meningitis bacteriana y neumonía causadas por neumococo.",
		},
		{
			Name:        "Tetravalente (DPT-IPV)",
			DoseCount:   4,
			Periods:     []PeriodRule{{3, 0}, {4, 0}, {5, 0}, {18, 0}},
			Description: "Previene difteria, tos ferina, tétanos y poliomielitis.",
		},
		{
			Name:        "BCG",
			DoseCount:   1,
			Periods:     []PeriodRule{{5, 0}},
			Description: "Previene la tuberculosis, en particular sus formas graves en niños.",
		},
		{
			Name:      "MR (sarampión-rubéola)",
			DoseCount: 2,
			// la 2da dosis corresponde al año previo al ingreso escolar
			Periods:     []PeriodRule{{12, 0}, {60, 0}},
			Description: "Previene el sarampión y la rubéola. Requiere dos dosis.",
		},
		{
			Name:      "Varicela",
			DoseCount: 2,
			// 2da dosis: al menos 3 meses después de la 1ra
			Periods:     []PeriodRule{{12, 0}, {15, 3}},
			Description: "Previene las formas graves de la varicela.",
		},
		{
			Name:      "Encefalitis japonesa",
			DoseCount: 4,
			// 3ra dosis ~1 año después de la 2da; el refuerzo a los 9 años
			Periods:     []PeriodRule{{36, 0}, {37, 1}, {49, 12}, {108, 0}},
			Description: "Previene la encefalitis japonesa, una enfermedad cerebral grave de origen viral.",
		},
	}
}
