package vaccines

import "testing"

func TestDefault_AllDefinitionsValid(t *testing.T) {
	table := Default()
	if len(table) == 0 {
		t.Fatalf("default table is empty")
	}

	seen := map[string]bool{}
	for _, d := range table {
		if err := d.Validate(); err != nil {
			t.Fatalf("definition %q invalid: %v", d.Name, err)
		}
		if seen[d.Name] {
			t.Fatalf("duplicate vaccine name %q", d.Name)
		}
		seen[d.Name] = true
	}
}

func TestDefinition_Validate(t *testing.T) {
	valid := Definition{
		Name:      "BCG",
		DoseCount: 1,
		Periods:   []PeriodRule{{OffsetMonths: 5}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	cases := []struct {
		name string
		def  Definition
	}{
		{"nombre vacío", Definition{DoseCount: 1, Periods: []PeriodRule{{OffsetMonths: 5}}}},
		{"dose count cero", Definition{Name: "x", DoseCount: 0, Periods: []PeriodRule{}}},
		{"periods no coincide con dose count", Definition{Name: "x", DoseCount: 2, Periods: []PeriodRule{{OffsetMonths: 5}}}},
		{"offset negativo", Definition{Name: "x", DoseCount: 1, Periods: []PeriodRule{{OffsetMonths: -1}}}},
		{"intervalo negativo", Definition{Name: "x", DoseCount: 1, Periods: []PeriodRule{{OffsetMonths: 1, IntervalMonths: -2}}}},
	}
	for _, tc := range cases {
		if err := tc.def.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
