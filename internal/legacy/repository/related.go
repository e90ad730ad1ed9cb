package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Interaction struct {
	ID                uuid.UUID
	ProspectID        uuid.UUID
	NFCUID            *string
	DeviceID          *string
	Module            *string
	Action            *string
	FlowID            *string
	FlowOrder         *int
	InteractionStatus *string
	Payload           []byte
	Timestamp         time.Time
}

// ListInteractions returns a prospect's interactions, newest first.
func (r *Repository) ListInteractions(ctx context.Context, prospectID uuid.UUID) ([]Interaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT interaccion_id, prospecto_id, uid_nfc, dispositivo_id, modulo, accion, flow_id, orden_en_flujo, estado_interaccion, payload_json, timestamp
		FROM interaccion
		WHERE prospecto_id = $1
		ORDER BY timestamp DESC
	`, prospectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Interaction, 0)
	for rows.Next() {
		var item Interaction
		if err := rows.Scan(
			&item.ID, &item.ProspectID, &item.NFCUID, &item.DeviceID, &item.Module, &item.Action,
			&item.FlowID, &item.FlowOrder, &item.InteractionStatus, &item.Payload, &item.Timestamp,
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

type TestResult struct {
	ID             uuid.UUID
	TestID         *string
	ProspectID     uuid.UUID
	Score          string
	Classification *string
	Timestamp      time.Time
}

func (r *Repository) ListTestResults(ctx context.Context, prospectID uuid.UUID) ([]TestResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT resultado_id, test_id, prospecto_id, puntaje, clasificacion, timestamp
		FROM test_resultado
		WHERE prospecto_id = $1
		ORDER BY timestamp DESC
	`, prospectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]TestResult, 0)
	for rows.Next() {
		var item TestResult
		if err := rows.Scan(&item.ID, &item.TestID, &item.ProspectID, &item.Score, &item.Classification, &item.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

type Advisory struct {
	ID                uuid.UUID
	ProspectID        uuid.UUID
	AdvisorID         *string
	Motivations       *string
	Barriers          *string
	PreferredModality *string
	Notes             *string
	Date              time.Time
}

func (r *Repository) ListAdvisories(ctx context.Context, prospectID uuid.UUID) ([]Advisory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT asesoria_id, prospecto_id, asesor_id, motivaciones, barreras, modalidad_preferida, observaciones, fecha_asesoria
		FROM asesoria
		WHERE prospecto_id = $1
		ORDER BY fecha_asesoria DESC
	`, prospectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Advisory, 0)
	for rows.Next() {
		var item Advisory
		if err := rows.Scan(
			&item.ID, &item.ProspectID, &item.AdvisorID, &item.Motivations, &item.Barriers,
			&item.PreferredModality, &item.Notes, &item.Date,
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
