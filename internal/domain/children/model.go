package children

import "time"

// DoseStatus es el estado almacenado de una dosis.
type DoseStatus string

const (
	DoseStatusPending      DoseStatus = "pending"
	DoseStatusAdministered DoseStatus = "administered"
)

// DisplayStatus es la clasificación derivada que consume la capa de
// presentación. Se recalcula en cada consulta contra "hoy"; nunca se persiste.
type DisplayStatus string

const (
	DisplayAdministered DisplayStatus = "administered"
	DisplayDue          DisplayStatus = "due"
	DisplayOverdue      DisplayStatus = "overdue"
	DisplayUpcoming     DisplayStatus = "upcoming"
)

// DoseObligation es una dosis requerida de una vacuna, con su ventana de
// fechas recomendada. Es un value object: las mutaciones de estado devuelven
// una copia (ver WithAdministered / WithPending) para evitar aliasing.
//
// Invariantes: RecommendedEnd = RecommendedStart + 1 mes − 1 día;
// AdministeredAt presente si y solo si Status == administered.
type DoseObligation struct {
	VaccineName string
	DoseNumber  int // 1-based, para mostrar "dosis N"

	RecommendedStart time.Time
	RecommendedEnd   time.Time

	Status         DoseStatus
	AdministeredAt *time.Time
}

// WithAdministered devuelve la dosis marcada como administrada en la fecha
// dada. Si date es cero, usa RecommendedStart como fecha por defecto.
func (o DoseObligation) WithAdministered(date time.Time) DoseObligation {
	if date.IsZero() {
		date = o.RecommendedStart
	}
	d := dateOnly(date)
	o.Status = DoseStatusAdministered
	o.AdministeredAt = &d
	return o
}

// WithPending devuelve la dosis de vuelta a pendiente, limpiando la fecha de
// administración.
func (o DoseObligation) WithPending() DoseObligation {
	o.Status = DoseStatusPending
	o.AdministeredAt = nil
	return o
}

// Child agrega la fecha de nacimiento de un niño con su secuencia de dosis,
// ordenada ascendente por RecommendedStart (empates: orden de emisión por
// vacuna, ver ComputeSchedule).
type Child struct {
	ID          string
	OwnerUserID string

	Name      string
	BirthDate time.Time

	Obligations []DoseObligation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Progress devuelve (dosis administradas, dosis totales). Conteo simple, sin
// crédito parcial.
func (c Child) Progress() (administered, total int) {
	for _, o := range c.Obligations {
		if o.Status == DoseStatusAdministered {
			administered++
		}
	}
	return administered, len(c.Obligations)
}

// NextPending devuelve la dosis pendiente con menor RecommendedStart y los
// días que faltan hasta ella desde asOf (negativo si ya está vencida).
// ok == false cuando todas las dosis están administradas.
func (c Child) NextPending(asOf time.Time) (next DoseObligation, daysUntil int, ok bool) {
	// Obligations ya está ordenada por RecommendedStart, alcanza con la
	// primera pendiente.
	for _, o := range c.Obligations {
		if o.Status == DoseStatusPending {
			return o, daysBetween(asOf, o.RecommendedStart), true
		}
	}
	return DoseObligation{}, 0, false
}
