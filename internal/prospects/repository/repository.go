// Package repository implements data access for the current table family.
// The current schema stores canonical status values directly, so no
// projection layer is needed here.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("prospect not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Prospect struct {
	ID           int64
	DocumentType string
	DNI          string
	FullName     string
	Email        string
	Phone        *string
	City         *string
	Origin       *string
	DataConsent  bool
	Status       string
	CreatedAt    time.Time
}

type ListProspectsParams struct {
	Page   int
	Limit  int
	Search *string
	City   *string
	Status *string
}

// List returns a page of prospects plus the total matching the filters.
func (r *Repository) List(ctx context.Context, params ListProspectsParams) ([]Prospect, int, error) {
	where := `
		WHERE ($1::text IS NULL OR full_name ILIKE '%' || $1 || '%' OR dni ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR city ILIKE $2)
		  AND ($3::text IS NULL OR status = $3)`

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prospects`+where,
		params.Search, params.City, params.Status,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	rows, err := r.pool.Query(ctx, `
		SELECT id, document_type, dni, full_name, email, phone, city, origin, data_consent, status, created_at
		FROM prospects`+where+`
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`, params.Search, params.City, params.Status, params.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Prospect, 0)
	for rows.Next() {
		var item Prospect
		if err := rows.Scan(
			&item.ID, &item.DocumentType, &item.DNI, &item.FullName, &item.Email,
			&item.Phone, &item.City, &item.Origin, &item.DataConsent, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (Prospect, error) {
	var prospect Prospect
	err := r.pool.QueryRow(ctx, `
		SELECT id, document_type, dni, full_name, email, phone, city, origin, data_consent, status, created_at
		FROM prospects WHERE id = $1
	`, id).Scan(
		&prospect.ID, &prospect.DocumentType, &prospect.DNI, &prospect.FullName, &prospect.Email,
		&prospect.Phone, &prospect.City, &prospect.Origin, &prospect.DataConsent, &prospect.Status, &prospect.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Prospect{}, ErrNotFound
	}
	if err != nil {
		return Prospect{}, err
	}
	return prospect, nil
}

type DashboardCounts struct {
	TotalProspects    int
	TotalInteractions int
	TotalTests        int
	TotalAdvisories   int
	ActiveCenters     int
	TotalDevices      int
}

func (r *Repository) DashboardCounts(ctx context.Context) (DashboardCounts, error) {
	var counts DashboardCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM prospects),
			(SELECT COUNT(*) FROM interactions),
			(SELECT COUNT(*) FROM tests),
			(SELECT COUNT(*) FROM advisories),
			(SELECT COUNT(*) FROM centers WHERE active),
			(SELECT COUNT(*) FROM devices)
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

func (r *Repository) InteractionsPerDay(ctx context.Context, since time.Time) ([]DayCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', created_at) AS day, COUNT(*)
		FROM interactions
		WHERE created_at >= $1
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

func (r *Repository) ProspectsByCity(ctx context.Context, limit int) ([]CityCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT city, COUNT(*) AS total
		FROM prospects
		GROUP BY city
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
