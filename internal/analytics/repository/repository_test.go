package repository

import (
	"testing"

	"prospect_portal_backend/internal/metrics"
)

func TestGroupStatsLabels(t *testing.T) {
	if enrolledLabel != "Matriculado" {
		t.Fatalf("unexpected enrolled label %q", enrolledLabel)
	}
	// Contacted is the single contacted status, not every status past entry.
	if contactedLabel != "Contactado" {
		t.Fatalf("unexpected contacted label %q", contactedLabel)
	}
}

func TestOrUnspecified(t *testing.T) {
	if got := orUnspecified(nil); got != metrics.UnspecifiedLabel {
		t.Fatalf("nil key: got %q", got)
	}
	empty := ""
	if got := orUnspecified(&empty); got != metrics.UnspecifiedLabel {
		t.Fatalf("empty key: got %q", got)
	}
	device := "totem-01"
	if got := orUnspecified(&device); got != "totem-01" {
		t.Fatalf("set key: got %q", got)
	}
}
