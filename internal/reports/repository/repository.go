// Package repository implements the row queries feeding report generation.
// Reports read the legacy table family and project statuses to canonical
// values at scan time.
package repository

import (
	"context"
	"time"

	"prospect_portal_backend/internal/legacy/schema"
	"prospect_portal_backend/internal/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Filters bounds report rows. Start is inclusive, End exclusive; City and
// Channel match case-insensitively; Status is canonical.
type Filters struct {
	Start   *time.Time
	End     *time.Time
	City    *string
	Channel *string
	Status  *string
}

type ProspectRow struct {
	DNI          string
	FullName     string
	Email        string
	Phone        *string
	City         *string
	Status       string
	Origin       *string
	RegisteredAt time.Time
}

// ListProspects returns every prospect matching the filters, newest first.
func (r *Repository) ListProspects(ctx context.Context, filters Filters) ([]ProspectRow, error) {
	var status *string
	if filters.Status != nil {
		label := schema.LegacyStatus(*filters.Status)
		status = &label
	}

	rows, err := r.pool.Query(ctx, `
		SELECT dni, nombre, correo, celular, ciudad, estado, origen, fecha_registro
		FROM prospecto
		WHERE ($1::timestamptz IS NULL OR fecha_registro >= $1)
		  AND ($2::timestamptz IS NULL OR fecha_registro < $2)
		  AND ($3::text IS NULL OR ciudad ILIKE $3)
		  AND ($4::text IS NULL OR origen ILIKE $4)
		  AND ($5::text IS NULL OR estado = $5)
		ORDER BY fecha_registro DESC
	`, filters.Start, filters.End, filters.City, filters.Channel, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ProspectRow, 0)
	for rows.Next() {
		var item ProspectRow
		var estado string
		if err := rows.Scan(
			&item.DNI, &item.FullName, &item.Email, &item.Phone,
			&item.City, &estado, &item.Origin, &item.RegisteredAt,
		); err != nil {
			return nil, err
		}
		item.Status = schema.CanonicalStatus(estado)
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

type MonthlyConversion struct {
	Month    time.Time
	Total    int
	Enrolled int
}

// MonthlyConversions groups registrations per calendar month with enrollment
// counts, oldest first.
func (r *Repository) MonthlyConversions(ctx context.Context, filters Filters) ([]MonthlyConversion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('month', fecha_registro) AS month,
			COUNT(*),
			COUNT(*) FILTER (WHERE estado = $3)
		FROM prospecto
		WHERE ($1::timestamptz IS NULL OR fecha_registro >= $1)
		  AND ($2::timestamptz IS NULL OR fecha_registro < $2)
		GROUP BY month
		ORDER BY month
	`, filters.Start, filters.End, schema.LegacyStatus(metrics.StatusEnrolled))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MonthlyConversion, 0)
	for rows.Next() {
		var item MonthlyConversion
		if err := rows.Scan(&item.Month, &item.Total, &item.Enrolled); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

type InteractionRow struct {
	Timestamp    time.Time
	ProspectName string
	Module       *string
	Action       *string
	DeviceID     *string
	Status       *string
}

// ListInteractions returns interactions joined to their prospect, newest
// first.
func (r *Repository) ListInteractions(ctx context.Context, filters Filters) ([]InteractionRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.timestamp, p.nombre, i.modulo, i.accion, i.dispositivo_id, i.estado_interaccion
		FROM interaccion i
		JOIN prospecto p ON p.prospecto_id = i.prospecto_id
		WHERE ($1::timestamptz IS NULL OR i.timestamp >= $1)
		  AND ($2::timestamptz IS NULL OR i.timestamp < $2)
		ORDER BY i.timestamp DESC
	`, filters.Start, filters.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]InteractionRow, 0)
	for rows.Next() {
		var item InteractionRow
		if err := rows.Scan(
			&item.Timestamp, &item.ProspectName, &item.Module,
			&item.Action, &item.DeviceID, &item.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}
