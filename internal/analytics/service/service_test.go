package service

import (
	"testing"
	"time"

	"prospect_portal_backend/internal/metrics"
)

func TestOperationalWindows_TrailingDays(t *testing.T) {
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

	weekAgo, monthAgo := operationalWindows(now)
	if want := time.Date(2024, 4, 29, 12, 0, 0, 0, time.UTC); !weekAgo.Equal(want) {
		t.Fatalf("week window: got %v, want %v", weekAgo, want)
	}
	if want := time.Date(2024, 4, 6, 12, 0, 0, 0, time.UTC); !monthAgo.Equal(want) {
		t.Fatalf("month window: got %v, want %v", monthAgo, want)
	}
}

func TestPipelineStatuses(t *testing.T) {
	want := []string{metrics.StatusContacted, metrics.StatusInProcess}
	if len(pipelineStatuses) != len(want) {
		t.Fatalf("got %v, want %v", pipelineStatuses, want)
	}
	for i, status := range want {
		if pipelineStatuses[i] != status {
			t.Fatalf("got %v, want %v", pipelineStatuses, want)
		}
	}
}
