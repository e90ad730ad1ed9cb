package service

import (
	"testing"
	"time"

	"prospect_portal_backend/internal/reports/transport"
)

func strPtr(s string) *string { return &s }

func TestToFilters_EndDateBecomesExclusiveBound(t *testing.T) {
	req := transport.ReportRequest{
		StartDate: strPtr("2024-03-01"),
		EndDate:   strPtr("2024-03-31"),
	}

	filters := toFilters(req)
	if filters.Start == nil || !filters.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start bound %v", filters.Start)
	}
	if filters.End == nil || !filters.End.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected end bound at following midnight, got %v", filters.End)
	}
}

func TestToFilters_NoDates(t *testing.T) {
	filters := toFilters(transport.ReportRequest{City: strPtr("Lima")})
	if filters.Start != nil || filters.End != nil {
		t.Fatal("expected nil date bounds")
	}
	if filters.City == nil || *filters.City != "Lima" {
		t.Fatalf("unexpected city filter %v", filters.City)
	}
}

func TestFiltersEcho_NilWhenEmpty(t *testing.T) {
	if echo := filtersEcho(transport.ReportRequest{Format: "json"}); echo != nil {
		t.Fatalf("expected nil echo, got %+v", echo)
	}
}

func TestFiltersEcho_RepeatsCriteria(t *testing.T) {
	req := transport.ReportRequest{
		StartDate: strPtr("2024-01-01"),
		Status:    strPtr("enrolled"),
	}

	echo := filtersEcho(req)
	if echo == nil {
		t.Fatal("expected echo")
	}
	if echo.StartDate == nil || *echo.StartDate != "2024-01-01" {
		t.Fatalf("unexpected start date %v", echo.StartDate)
	}
	if echo.Status == nil || *echo.Status != "enrolled" {
		t.Fatalf("unexpected status %v", echo.Status)
	}
	if echo.City != nil || echo.Channel != nil || echo.EndDate != nil {
		t.Fatal("expected unset criteria to stay nil")
	}
}
