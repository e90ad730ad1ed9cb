// Package repository implements the aggregation queries feeding the metrics
// engine. All analytics read the legacy table family; rows are projected into
// the engine's canonical shapes at scan time.
package repository

import (
	"context"
	"time"

	"prospect_portal_backend/internal/legacy/schema"
	"prospect_portal_backend/internal/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	enrolledLabel  = schema.LegacyStatus(metrics.StatusEnrolled)
	contactedLabel = schema.LegacyStatus(metrics.StatusContacted)
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// orUnspecified labels NULL or empty group keys so they still show up as a
// bucket in grouped results.
func orUnspecified(s *string) string {
	if s == nil || *s == "" {
		return metrics.UnspecifiedLabel
	}
	return *s
}

// StatusCounts groups prospects by status, optionally bounded to a
// registration window. start is inclusive, end exclusive.
func (r *Repository) StatusCounts(ctx context.Context, start, end *time.Time) ([]metrics.StatusCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT estado, COUNT(*)
		FROM prospecto
		WHERE ($1::timestamptz IS NULL OR fecha_registro >= $1)
		  AND ($2::timestamptz IS NULL OR fecha_registro < $2)
		GROUP BY estado
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]metrics.StatusCount, 0)
	for rows.Next() {
		var estado string
		var count int
		if err := rows.Scan(&estado, &count); err != nil {
			return nil, err
		}
		counts = append(counts, metrics.StatusCount{
			Status: schema.CanonicalStatus(estado),
			Count:  count,
		})
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return counts, nil
}

func (r *Repository) CountProspects(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prospecto`).Scan(&total)
	return total, err
}

func (r *Repository) CountEnrolled(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prospecto WHERE estado = $1`, enrolledLabel).Scan(&total)
	return total, err
}

// CountRegistrations counts prospects registered in the half-open window
// [from, to).
func (r *Repository) CountRegistrations(ctx context.Context, from, to time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM prospecto WHERE fecha_registro >= $1 AND fecha_registro < $2
	`, from, to).Scan(&total)
	return total, err
}

// CountEnrolledRegistrations counts enrolled prospects registered in the
// half-open window [from, to).
func (r *Repository) CountEnrolledRegistrations(ctx context.Context, from, to time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM prospecto WHERE estado = $1 AND fecha_registro >= $2 AND fecha_registro < $3
	`, enrolledLabel, from, to).Scan(&total)
	return total, err
}

// OriginStats groups prospects by origin with enrolled and contacted counts.
// Contacted is the snapshot count of prospects currently in the contacted
// status.
func (r *Repository) OriginStats(ctx context.Context) ([]metrics.GroupStats, error) {
	return r.groupStats(ctx, "origen")
}

// CityStats groups prospects by city with enrolled and contacted counts.
func (r *Repository) CityStats(ctx context.Context) ([]metrics.GroupStats, error) {
	return r.groupStats(ctx, "ciudad")
}

func (r *Repository) groupStats(ctx context.Context, column string) ([]metrics.GroupStats, error) {
	// column is one of two fixed identifiers, never caller input.
	rows, err := r.pool.Query(ctx, `
		SELECT `+column+`, COUNT(*),
			COUNT(*) FILTER (WHERE estado = $1),
			COUNT(*) FILTER (WHERE estado = $2)
		FROM prospecto
		GROUP BY `+column, enrolledLabel, contactedLabel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]metrics.GroupStats, 0)
	for rows.Next() {
		var g metrics.GroupStats
		if err := rows.Scan(&g.Key, &g.Total, &g.Enrolled, &g.Contacted); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return groups, nil
}

// RegistrationTrend buckets registrations by the given granularity from the
// cutoff onward. Only buckets with at least one registration come back.
func (r *Repository) RegistrationTrend(ctx context.Context, g metrics.Granularity, since time.Time) ([]metrics.PeriodCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc($1, fecha_registro) AS period,
			COUNT(*),
			COUNT(*) FILTER (WHERE estado = $2)
		FROM prospecto
		WHERE fecha_registro >= $3
		GROUP BY period
		ORDER BY period
	`, string(g), enrolledLabel, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods := make([]metrics.PeriodCount, 0)
	for rows.Next() {
		var p metrics.PeriodCount
		if err := rows.Scan(&p.Period, &p.Registrations, &p.Enrollments); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return periods, nil
}
