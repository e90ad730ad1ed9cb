// Package repository implements data access for the legacy table family.
// Rows are projected through the schema package so callers only ever see
// canonical status values.
package repository

import (
	"context"
	"errors"
	"time"

	"prospect_portal_backend/internal/legacy/schema"

	"github.com/google/uuid"
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
	ID           uuid.UUID
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
	Origin *string
}

// List returns a page of prospects plus the total matching the filters.
// Search matches name, DNI and email case-insensitively.
func (r *Repository) List(ctx context.Context, params ListProspectsParams) ([]Prospect, int, error) {
	var status *string
	if params.Status != nil {
		label := schema.LegacyStatus(*params.Status)
		status = &label
	}

	where := `
		WHERE ($1::text IS NULL OR nombre ILIKE '%' || $1 || '%' OR dni ILIKE '%' || $1 || '%' OR correo ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR ciudad ILIKE $2)
		  AND ($3::text IS NULL OR estado = $3)
		  AND ($4::text IS NULL OR origen ILIKE $4)`

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prospecto`+where,
		params.Search, params.City, status, params.Origin,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	rows, err := r.pool.Query(ctx, `
		SELECT prospecto_id, tipo_documento, dni, nombre, correo, celular, ciudad, origen, consentimiento_datos, estado, fecha_registro
		FROM prospecto`+where+`
		ORDER BY fecha_registro DESC
		LIMIT $5 OFFSET $6
	`, params.Search, params.City, status, params.Origin, params.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Prospect, 0)
	for rows.Next() {
		prospect, err := scanProspect(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, prospect)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return items, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Prospect, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT prospecto_id, tipo_documento, dni, nombre, correo, celular, ciudad, origen, consentimiento_datos, estado, fecha_registro
		FROM prospecto WHERE prospecto_id = $1
	`, id)

	prospect, err := scanProspect(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Prospect{}, ErrNotFound
	}
	if err != nil {
		return Prospect{}, err
	}
	return prospect, nil
}

// ExistsByDNI reports whether any prospect carries the given document number,
// optionally excluding one row.
func (r *Repository) ExistsByDNI(ctx context.Context, dni string, exclude *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM prospecto WHERE dni = $1 AND ($2::uuid IS NULL OR prospecto_id <> $2))
	`, dni, exclude).Scan(&exists)
	return exists, err
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string, exclude *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM prospecto WHERE lower(correo) = lower($1) AND ($2::uuid IS NULL OR prospecto_id <> $2))
	`, email, exclude).Scan(&exists)
	return exists, err
}

type CreateProspectParams struct {
	DocumentType string
	DNI          string
	FullName     string
	Email        string
	Phone        *string
	City         *string
	Origin       *string
	DataConsent  bool
	Status       string
}

func (r *Repository) Create(ctx context.Context, params CreateProspectParams) (Prospect, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO prospecto (prospecto_id, tipo_documento, dni, nombre, correo, celular, ciudad, origen, consentimiento_datos, estado, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING prospecto_id, tipo_documento, dni, nombre, correo, celular, ciudad, origen, consentimiento_datos, estado, fecha_registro
	`, uuid.New(), params.DocumentType, params.DNI, params.FullName, params.Email,
		params.Phone, params.City, params.Origin, params.DataConsent, schema.LegacyStatus(params.Status),
	)

	return scanProspect(row)
}

type UpdateProspectParams struct {
	DocumentType *string
	DNI          *string
	FullName     *string
	Email        *string
	Phone        *string
	City         *string
	Origin       *string
	DataConsent  *bool
	Status       *string
}

// Update applies a partial update. Nil fields keep their stored value.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, params UpdateProspectParams) (Prospect, error) {
	var status *string
	if params.Status != nil {
		label := schema.LegacyStatus(*params.Status)
		status = &label
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE prospecto SET
			tipo_documento = COALESCE($2, tipo_documento),
			dni = COALESCE($3, dni),
			nombre = COALESCE($4, nombre),
			correo = COALESCE($5, correo),
			celular = COALESCE($6, celular),
			ciudad = COALESCE($7, ciudad),
			origen = COALESCE($8, origen),
			consentimiento_datos = COALESCE($9, consentimiento_datos),
			estado = COALESCE($10, estado)
		WHERE prospecto_id = $1
		RETURNING prospecto_id, tipo_documento, dni, nombre, correo, celular, ciudad, origen, consentimiento_datos, estado, fecha_registro
	`, id, params.DocumentType, params.DNI, params.FullName, params.Email,
		params.Phone, params.City, params.Origin, params.DataConsent, status,
	)

	prospect, err := scanProspect(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Prospect{}, ErrNotFound
	}
	if err != nil {
		return Prospect{}, err
	}
	return prospect, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM prospecto WHERE prospecto_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProspect(row pgx.Row) (Prospect, error) {
	var prospect Prospect
	var estado string
	err := row.Scan(
		&prospect.ID, &prospect.DocumentType, &prospect.DNI, &prospect.FullName, &prospect.Email,
		&prospect.Phone, &prospect.City, &prospect.Origin, &prospect.DataConsent, &estado, &prospect.CreatedAt,
	)
	if err != nil {
		return Prospect{}, err
	}
	prospect.Status = schema.CanonicalStatus(estado)
	return prospect, nil
}
