package metrics

import (
	"testing"
	"time"
)

func TestGranularityLookback(t *testing.T) {
	cases := map[Granularity]int{
		GranularityDay:   30,
		GranularityWeek:  84,
		GranularityMonth: 365,
	}
	for g, want := range cases {
		if got := g.LookbackDays(); got != want {
			t.Fatalf("%s: expected lookback %d, got %d", g, want, got)
		}
	}
	if Granularity("hour").Valid() {
		t.Fatal("hour should not be a valid granularity")
	}
}

func TestTemporalTrends_SparseSeriesPreserved(t *testing.T) {
	rows := []PeriodCount{
		{Period: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Registrations: 10, Enrollments: 2},
		// 2024-05-02 has no registrations and is absent from the grouped rows.
		{Period: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), Registrations: 4, Enrollments: 4},
	}

	series := TemporalTrends(GranularityDay, rows)

	if series.TotalPeriods != 2 {
		t.Fatalf("expected 2 sparse periods, got %d", series.TotalPeriods)
	}
	if series.Trends[0].Period != "2024-05-01" {
		t.Fatalf("unexpected day format %q", series.Trends[0].Period)
	}
	if series.Trends[0].ConversionRate != 20.00 {
		t.Fatalf("expected conversion 20.00, got %v", series.Trends[0].ConversionRate)
	}
	if series.Trends[1].ConversionRate != 100.00 {
		t.Fatalf("expected conversion 100.00, got %v", series.Trends[1].ConversionRate)
	}
}

func TestTemporalTrends_MonthFormatMatchesTruncatedTimestamp(t *testing.T) {
	rows := []PeriodCount{
		{Period: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Registrations: 3, Enrollments: 0},
	}

	series := TemporalTrends(GranularityMonth, rows)

	if series.Trends[0].Period != "2024-04-01T00:00:00" {
		t.Fatalf("unexpected month bucket format %q", series.Trends[0].Period)
	}
	if series.Trends[0].ConversionRate != 0 {
		t.Fatalf("expected guarded conversion 0, got %v", series.Trends[0].ConversionRate)
	}
}

func TestDensifyTrends_FillsGapsWithZeros(t *testing.T) {
	rows := []PeriodCount{
		{Period: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Registrations: 10, Enrollments: 2},
		{Period: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), Registrations: 4, Enrollments: 1},
	}

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	series := DensifyTrends(GranularityDay, rows, from, to)

	if series.TotalPeriods != 4 {
		t.Fatalf("expected 4 continuous periods, got %d", series.TotalPeriods)
	}
	gap := series.Trends[1]
	if gap.Period != "2024-05-02" || gap.Registrations != 0 || gap.ConversionRate != 0 {
		t.Fatalf("expected zero-filled gap, got %+v", gap)
	}
	if series.Trends[3].Period != "2024-05-04" {
		t.Fatalf("expected series to run through %q, got %q", "2024-05-04", series.Trends[3].Period)
	}
}

func TestDensifyTrends_WeekBucketsStartOnMonday(t *testing.T) {
	// 2024-05-15 is a Wednesday; its ISO week starts Monday 2024-05-13.
	from := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)

	series := DensifyTrends(GranularityWeek, nil, from, to)

	if series.TotalPeriods != 2 {
		t.Fatalf("expected 2 week buckets, got %d", series.TotalPeriods)
	}
	if series.Trends[0].Period != "2024-05-13T00:00:00" {
		t.Fatalf("expected week bucket starting Monday, got %q", series.Trends[0].Period)
	}
}
