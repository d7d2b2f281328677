package vaccines

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDefinition = errors.New("invalid vaccine definition")
)

// PeriodRule define cómo se calcula la fecha recomendada de una dosis.
//
// Para la dosis 0, o cualquier dosis con IntervalMonths == 0, la fecha se
// calcula desde la fecha de nacimiento usando OffsetMonths. Para dosis
// posteriores con IntervalMonths > 0, la fecha se encadena a la dosis
// anterior (OffsetMonths se ignora en ese caso).
type PeriodRule struct {
	OffsetMonths   int
	IntervalMonths int
}

// Definition es la definición inmutable de una vacuna dentro de la tabla
// maestra: nombre, cantidad de dosis y una regla de período por dosis.
type Definition struct {
	Name        string
	DoseCount   int
	Periods     []PeriodRule
	Description string
}

// Validate verifica la integridad de la definición. Una tabla mal formada es
// un fallo de configuración, no un error de entrada del usuario.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidDefinition
	}
	if d.DoseCount <= 0 {
		return ErrInvalidDefinition
	}
	if len(d.Periods) != d.DoseCount {
		return ErrInvalidDefinition
	}
	for _, p := range d.Periods {
		if p.OffsetMonths < 0 || p.IntervalMonths < 0 {
			return ErrInvalidDefinition
		}
	}
	return nil
}
