package children

import (
	"testing"
	"time"
)

func TestAddMonths_YearRolloverAndClamp(t *testing.T) {
	cases := []struct {
		in     time.Time
		months int
		want   time.Time
	}{
		{date(2023, time.October, 15), 4, date(2024, time.February, 15)},
		{date(2023, time.October, 31), 4, date(2024, time.February, 29)}, // bisiesto
		{date(2023, time.December, 31), 2, date(2024, time.February, 29)},
		{date(2023, time.January, 15), 0, date(2023, time.January, 15)},
		{date(2023, time.January, 15), 108, date(2032, time.January, 15)},
	}

	for _, tc := range cases {
		if got := addMonths(tc.in, tc.months); !got.Equal(tc.want) {
			t.Fatalf("addMonths(%s, %d): expected %s, got %s",
				tc.in.Format("2006-01-02"), tc.months,
				tc.want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := date(2023, time.March, 10)
	b := date(2023, time.March, 15)

	if got := daysBetween(a, b); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := daysBetween(b, a); got != -5 {
		t.Fatalf("expected -5, got %d", got)
	}
	if got := daysBetween(a, a); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
