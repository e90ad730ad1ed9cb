package repository

import (
	"context"
	"time"

	"prospect_portal_backend/internal/legacy/schema"
	"prospect_portal_backend/internal/metrics"
)

// ModuleActivity groups interactions by portal module with distinct prospect
// counts.
func (r *Repository) ModuleActivity(ctx context.Context) ([]metrics.ModuleActivity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT modulo, COUNT(*), COUNT(DISTINCT prospecto_id)
		FROM interaccion
		GROUP BY modulo
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modules := make([]metrics.ModuleActivity, 0)
	for rows.Next() {
		var module *string
		var activity metrics.ModuleActivity
		if err := rows.Scan(&module, &activity.TotalInteractions, &activity.UniqueProspects); err != nil {
			return nil, err
		}
		activity.Module = orUnspecified(module)
		modules = append(modules, activity)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return modules, nil
}

// TopDevices returns the most active devices by interaction count.
// Interactions without a device id form their own bucket.
func (r *Repository) TopDevices(ctx context.Context, limit int) ([]metrics.DeviceActivity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT dispositivo_id, COUNT(*)
		FROM interaccion
		GROUP BY dispositivo_id
		ORDER BY COUNT(*) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]metrics.DeviceActivity, 0)
	for rows.Next() {
		var id *string
		var d metrics.DeviceActivity
		if err := rows.Scan(&id, &d.Interactions); err != nil {
			return nil, err
		}
		d.DeviceID = orUnspecified(id)
		devices = append(devices, d)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return devices, nil
}

// InteractionStatusCounts groups interactions by their recorded status.
func (r *Repository) InteractionStatusCounts(ctx context.Context) ([]metrics.InteractionStatusCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT estado_interaccion, COUNT(*)
		FROM interaccion
		GROUP BY estado_interaccion
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]metrics.InteractionStatusCount, 0)
	for rows.Next() {
		var status *string
		var count metrics.InteractionStatusCount
		if err := rows.Scan(&status, &count.Count); err != nil {
			return nil, err
		}
		count.Status = orUnspecified(status)
		statuses = append(statuses, count)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return statuses, nil
}

// TestScores returns every stored score value as-is. The legacy schema keeps
// scores as text; parsing happens in the engine so malformed values surface.
func (r *Repository) TestScores(ctx context.Context) ([]string, error) {
	return r.scoreColumn(ctx, `SELECT puntaje FROM test_resultado`)
}

// EnrolledTestScores returns scores of tests taken by enrolled prospects.
func (r *Repository) EnrolledTestScores(ctx context.Context) ([]string, error) {
	return r.scoreColumn(ctx, `
		SELECT t.puntaje
		FROM test_resultado t
		JOIN prospecto p ON p.prospecto_id = t.prospecto_id
		WHERE p.estado = $1
	`, enrolledLabel)
}

func (r *Repository) scoreColumn(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]string, 0)
	for rows.Next() {
		var score string
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return scores, nil
}

// ClassificationCounts groups test results by classification.
func (r *Repository) ClassificationCounts(ctx context.Context) ([]metrics.ClassificationCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT clasificacion, COUNT(*)
		FROM test_resultado
		GROUP BY clasificacion
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]metrics.ClassificationCount, 0)
	for rows.Next() {
		var class *string
		var count metrics.ClassificationCount
		if err := rows.Scan(&class, &count.Count); err != nil {
			return nil, err
		}
		count.Classification = orUnspecified(class)
		classes = append(classes, count)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return classes, nil
}

// AdvisedProspects counts distinct prospects with at least one advisory.
func (r *Repository) AdvisedProspects(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT prospecto_id) FROM asesoria`).Scan(&total)
	return total, err
}

// EnrolledAdvisedProspects counts distinct advised prospects that enrolled.
func (r *Repository) EnrolledAdvisedProspects(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT a.prospecto_id)
		FROM asesoria a
		JOIN prospecto p ON p.prospecto_id = a.prospecto_id
		WHERE p.estado = $1
	`, enrolledLabel).Scan(&total)
	return total, err
}

// ModalityCounts groups advisories by preferred modality.
func (r *Repository) ModalityCounts(ctx context.Context) ([]metrics.ModalityCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT modalidad_preferida, COUNT(*)
		FROM asesoria
		GROUP BY modalidad_preferida
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modalities := make([]metrics.ModalityCount, 0)
	for rows.Next() {
		var m metrics.ModalityCount
		if err := rows.Scan(&m.Modality, &m.Count); err != nil {
			return nil, err
		}
		modalities = append(modalities, m)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return modalities, nil
}

// CountStatusesSince counts prospects in any of the canonical statuses,
// optionally bounded to registrations at or after since.
func (r *Repository) CountStatusesSince(ctx context.Context, canonical []string, since *time.Time) (int, error) {
	labels := make([]string, len(canonical))
	for i, status := range canonical {
		labels[i] = schema.LegacyStatus(status)
	}

	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM prospecto
		WHERE estado = ANY($1) AND ($2::timestamptz IS NULL OR fecha_registro >= $2)
	`, labels, since).Scan(&total)
	return total, err
}

// CountRegistrationsSince counts prospects registered at or after since.
func (r *Repository) CountRegistrationsSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM prospecto WHERE fecha_registro >= $1
	`, since).Scan(&total)
	return total, err
}

// CountInteractionsSince counts interactions at or after since.
func (r *Repository) CountInteractionsSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM interaccion WHERE timestamp >= $1
	`, since).Scan(&total)
	return total, err
}

// CountTestsSince counts test results at or after since.
func (r *Repository) CountTestsSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM test_resultado WHERE timestamp >= $1
	`, since).Scan(&total)
	return total, err
}

// CountAdvisoriesSince counts advisories at or after since.
func (r *Repository) CountAdvisoriesSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM asesoria WHERE fecha_asesoria >= $1
	`, since).Scan(&total)
	return total, err
}
