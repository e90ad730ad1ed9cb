package metrics

import (
	"testing"
	"time"
)

func TestComputeRealTime_GuardedTrends(t *testing.T) {
	// Previous month had no leads at all: every relative trend stays 0.
	result := ComputeRealTime(5, 0, TrendInputs{CurrentLeads: 5})

	if result.Trends.LeadsTrend != 0 {
		t.Fatalf("expected guarded leads trend 0, got %v", result.Trends.LeadsTrend)
	}
	if result.Trends.EnrolledTrend != 0 {
		t.Fatalf("expected guarded enrolled trend 0, got %v", result.Trends.EnrolledTrend)
	}
	if result.ConversionRate != 0 {
		t.Fatalf("expected conversion rate 0 with no enrollments, got %v", result.ConversionRate)
	}
}

func TestComputeRealTime_RelativeAndAbsoluteTrends(t *testing.T) {
	result := ComputeRealTime(100, 25, TrendInputs{
		CurrentLeads:     30,
		PreviousLeads:    20,
		CurrentEnrolled:  9,
		PreviousEnrolled: 4,
	})

	if result.ConversionRate != 25.00 {
		t.Fatalf("expected conversion rate 25.00, got %v", result.ConversionRate)
	}
	if result.Trends.LeadsTrend != 50.00 {
		t.Fatalf("expected leads trend 50.00, got %v", result.Trends.LeadsTrend)
	}
	if result.Trends.EnrolledTrend != 125.00 {
		t.Fatalf("expected enrolled trend 125.00, got %v", result.Trends.EnrolledTrend)
	}
	// Conversion trend is an absolute difference of period percentages:
	// 9/30=30% vs 4/20=20% -> +10, not a relative change.
	if result.Trends.ConversionTrend != 10.00 {
		t.Fatalf("expected conversion trend 10.00, got %v", result.Trends.ConversionTrend)
	}
}

func TestRelativeTrend_SamePeriodIsZero(t *testing.T) {
	for _, v := range []int{1, 7, 500} {
		if trend := RelativeTrend(v, v); trend != 0 {
			t.Fatalf("expected zero trend for equal periods, got %v", trend)
		}
	}
}

func TestMonthWindows_HalfOpenBoundaries(t *testing.T) {
	now := time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)
	prevStart, curStart := MonthWindows(now)

	if !curStart.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected current month start %v", curStart)
	}
	if !prevStart.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected previous month start %v", prevStart)
	}
}

func TestMonthWindows_JanuaryRollsBack(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	prevStart, curStart := MonthWindows(now)

	if !curStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected current month start %v", curStart)
	}
	if !prevStart.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected previous month start %v", prevStart)
	}
}
