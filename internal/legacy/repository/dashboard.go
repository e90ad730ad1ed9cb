package repository

import (
	"context"
	"time"
)

type DashboardCounts struct {
	TotalProspects    int
	TotalInteractions int
	TotalTests        int
	TotalAdvisories   int
	ActiveCenters     int
	TotalDevices      int
}

// DashboardCounts collects the entity totals shown on the overview screen.
func (r *Repository) DashboardCounts(ctx context.Context) (DashboardCounts, error) {
	var counts DashboardCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM prospecto),
			(SELECT COUNT(*) FROM interaccion),
			(SELECT COUNT(*) FROM test_resultado),
			(SELECT COUNT(*) FROM asesoria),
			(SELECT COUNT(*) FROM centro_experiencia WHERE activo),
			(SELECT COUNT(*) FROM dispositivo)
	`).Scan(
		&counts.TotalProspects, &counts.TotalInteractions, &counts.TotalTests,
		&counts.TotalAdvisories, &counts.ActiveCenters, &counts.TotalDevices,
	)
	return counts, err
}

type DayCount struct {
	Day   time.Time
	Count int
}

// InteractionsPerDay returns daily interaction counts for the trailing window.
func (r *Repository) InteractionsPerDay(ctx context.Context, since time.Time) ([]DayCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', timestamp) AS day, COUNT(*)
		FROM interaccion
		WHERE timestamp >= $1
		GROUP BY day
		ORDER BY day
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DayCount, 0)
	for rows.Next() {
		var item DayCount
		if err := rows.Scan(&item.Day, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

type CityCount struct {
	City  *string
	Count int
}

// ProspectsByCity returns prospect counts per city, largest first.
func (r *Repository) ProspectsByCity(ctx context.Context, limit int) ([]CityCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ciudad, COUNT(*) AS total
		FROM prospecto
		GROUP BY ciudad
		ORDER BY total DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CityCount, 0)
	for rows.Next() {
		var item CityCount
		if err := rows.Scan(&item.City, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}
