package schema

import (
	"testing"

	"prospect_portal_backend/internal/metrics"
)

func TestStatusRoundTrip(t *testing.T) {
	for _, canonical := range metrics.FunnelStages {
		legacy := LegacyStatus(canonical)
		if legacy == canonical {
			t.Fatalf("expected a legacy label for %s", canonical)
		}
		if back := CanonicalStatus(legacy); back != canonical {
			t.Fatalf("round trip %s -> %s -> %s", canonical, legacy, back)
		}
	}
}

func TestCanonicalStatus_UnknownLabelKept(t *testing.T) {
	if got := CanonicalStatus("Archivado"); got != "archivado" {
		t.Fatalf("expected unknown label lowercased, got %q", got)
	}
}

func TestCanonicalStatus_EmptyDefaultsToNew(t *testing.T) {
	if got := CanonicalStatus(""); got != metrics.StatusNew {
		t.Fatalf("expected empty status to default to new, got %q", got)
	}
}

func TestLegacyStatus_PassThroughForUnknown(t *testing.T) {
	if got := LegacyStatus("archived"); got != "archived" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}
