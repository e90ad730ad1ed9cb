// Package schema maps the legacy table family onto the canonical metrics
// model. The legacy generation stores Spanish status labels; everything above
// the repository layer speaks the canonical status values, so projection in
// both directions lives here and nowhere else.
package schema

import (
	"strings"

	"prospect_portal_backend/internal/metrics"
)

var legacyByCanonical = map[string]string{
	metrics.StatusNew:           "Nuevo",
	metrics.StatusContacted:     "Contactado",
	metrics.StatusInProcess:     "En proceso",
	metrics.StatusEnrolled:      "Matriculado",
	metrics.StatusNotInterested: "No interesado",
}

var canonicalByLegacy = map[string]string{
	"nuevo":         metrics.StatusNew,
	"contactado":    metrics.StatusContacted,
	"en proceso":    metrics.StatusInProcess,
	"matriculado":   metrics.StatusEnrolled,
	"no interesado": metrics.StatusNotInterested,
}

// LegacyStatus returns the stored legacy label for a canonical status. The
// canonical value is returned unchanged when it is not one of the fixed
// lifecycle statuses, so unknown filters still reach the query as-is.
func LegacyStatus(canonical string) string {
	if label, ok := legacyByCanonical[strings.ToLower(strings.TrimSpace(canonical))]; ok {
		return label
	}
	return canonical
}

// CanonicalStatus projects a stored legacy label onto the canonical status
// set. Labels outside the fixed lifecycle are lowercased and kept, never
// dropped, so aggregates still account for them.
func CanonicalStatus(legacy string) string {
	normalized := strings.ToLower(strings.TrimSpace(legacy))
	if canonical, ok := canonicalByLegacy[normalized]; ok {
		return canonical
	}
	if normalized == "" {
		return metrics.StatusNew
	}
	return normalized
}
