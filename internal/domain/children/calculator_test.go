package children

import (
	"testing"
	"time"

	"vaccine-reminder/internal/domain/vaccines"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeSchedule_SingleDoseOffset(t *testing.T) {
	table := []vaccines.Definition{
		{Name: "BCG", DoseCount: 1, Periods: []vaccines.PeriodRule{{OffsetMonths: 5}}},
	}

	out, err := ComputeSchedule(table, date(2023, time.January, 15))
	if err != nil {
		t.Fatalf("ComputeSchedule error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(out))
	}

	o := out[0]
	if !o.RecommendedStart.Equal(date(2023, time.June, 15)) {
		t.Fatalf("expected start 2023-06-15, got %s", o.RecommendedStart)
	}
	if !o.RecommendedEnd.Equal(date(2023, time.July, 14)) {
		t.Fatalf("expected end 2023-07-14, got %s", o.RecommendedEnd)
	}
	if o.Status != DoseStatusPending {
		t.Fatalf("expected pending, got %s", o.Status)
	}
	if o.AdministeredAt != nil {
		t.Fatalf("expected no administered date on a fresh schedule")
	}
}

func TestComputeSchedule_ChainedIntervals(t *testing.T) {
	// 4 dosis: la 2da se encadena 1 mes a la 1ra (su offset 37 se ignora),
	// la 3ra se encadena 12 meses a la 2da, la 4ta vuelve a offset puro.
	table := []vaccines.Definition{
		{
			Name:      "encefalitis",
			DoseCount: 4,
			Periods: []vaccines.PeriodRule{
				{OffsetMonths: 36},
				{OffsetMonths: 37, IntervalMonths: 1},
				{OffsetMonths: 49, IntervalMonths: 12},
				{OffsetMonths: 108},
			},
		},
	}

	out, err := ComputeSchedule(table, date(2023, time.January, 15))
	if err != nil {
		t.Fatalf("ComputeSchedule error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 obligations, got %d", len(out))
	}

	wantStarts := []time.Time{
		date(2026, time.January, 15),
		date(2026, time.February, 15),
		date(2027, time.February, 15),
		date(2032, time.January, 15),
	}
	for i, want := range wantStarts {
		if !out[i].RecommendedStart.Equal(want) {
			t.Fatalf("dose %d: expected start %s, got %s", i+1, want.Format("2006-01-02"), out[i].RecommendedStart.Format("2006-01-02"))
		}
		if out[i].DoseNumber != i+1 {
			t.Fatalf("dose %d: expected dose number %d, got %d", i+1, i+1, out[i].DoseNumber)
		}
	}
}

func TestComputeSchedule_MonthEndClamping(t *testing.T) {
	// 31 ene + 1 mes debe caer en el último día de febrero, no normalizarse
	// a marzo.
	table := []vaccines.Definition{
		{Name: "test", DoseCount: 1, Periods: []vaccines.PeriodRule{{OffsetMonths: 1}}},
	}

	out, err := ComputeSchedule(table, date(2023, time.January, 31))
	if err != nil {
		t.Fatalf("ComputeSchedule error: %v", err)
	}
	if !out[0].RecommendedStart.Equal(date(2023, time.February, 28)) {
		t.Fatalf("expected start 2023-02-28, got %s", out[0].RecommendedStart.Format("2006-01-02"))
	}

	// año bisiesto
	out, err = ComputeSchedule(table, date(2024, time.January, 31))
	if err != nil {
		t.Fatalf("ComputeSchedule error: %v", err)
	}
	if !out[0].RecommendedStart.Equal(date(2024, time.February, 29)) {
		t.Fatalf("expected start 2024-02-29, got %s", out[0].RecommendedStart.Format("2006-01-02"))
	}
}

func TestComputeSchedule_FullTable_CountAndInvariants(t *testing.T) {
	table := vaccines.Default()
	birth := date(2023, time.January, 15)

	out, err := ComputeSchedule(table, birth)
	if err != nil {
		t.Fatalf("ComputeSchedule error: %v", err)
	}

	wantTotal := 0
	for _, v := range table {
		wantTotal += v.DoseCount
	}
	if len(out) != wantTotal {
		t.Fatalf("expected %d obligations, got %d", wantTotal, len(out))
	}

	for i, o := range out {
		// ventana: fin = inicio + 1 mes - 1 día, siempre posterior al inicio
		wantEnd := addMonths(o.RecommendedStart, 1).AddDate(0, 0, -1)
		if !o.RecommendedEnd.Equal(wantEnd) {
			t.Fatalf("obligation %d: expected end %s, got %s", i, wantEnd, o.RecommendedEnd)
		}
		if !o.RecommendedEnd.After(o.RecommendedStart) {
			t.Fatalf("obligation %d: end must be after start", i)
		}

		// orden no decreciente por inicio recomendado
		if i > 0 && out[i-1].RecommendedStart.After(o.RecommendedStart) {
			t.Fatalf("obligations not sorted at index %d", i)
		}
	}
}

func TestComputeSchedule_StableSortOnTies(t *testing.T) {
	// dos vacunas con el mismo offset: conservan el orden de la tabla
	table := []vaccines.Definition{
		{Name: "primera", DoseCount: 1, Periods: []vaccines.PeriodRule{{OffsetMonths: 2}}},
		{Name: "segunda", DoseCount: 1, Periods: []vaccines.PeriodRule{{OffsetMonths: 2}}},
	}

	out, err := ComputeSchedule(table, date(2023, time.January, 15))
	if err != nil {
		t.Fatalf("ComputeSchedule error: %v", err)
	}
	if out[0].VaccineName != "primera" || out[1].VaccineName != "segunda" {
		t.Fatalf("tie order not stable: got %s, %s", out[0].VaccineName, out[1].VaccineName)
	}
}

func TestComputeSchedule_MalformedTable(t *testing.T) {
	table := []vaccines.Definition{
		{Name: "rota", DoseCount: 3, Periods: []vaccines.PeriodRule{{OffsetMonths: 2}, {OffsetMonths: 3}}},
	}

	if _, err := ComputeSchedule(table, date(2023, time.January, 15)); err == nil {
		t.Fatalf("expected error for periods/doseCount mismatch")
	}
}
