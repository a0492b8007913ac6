package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearth/sanctuary/pkg/entity"
)

type DoseEventsRepository struct {
	conn PgConnection
}

func NewDoseEventsRepo(conn PgConnection) *DoseEventsRepository {
	return &DoseEventsRepository{
		conn: conn,
	}
}

func (dr *DoseEventsRepository) Append(ctx context.Context, userID uuid.UUID, takenAt time.Time) (*entity.DoseEvent, error) {
	event := entity.DoseEvent{UserID: userID}
	row := dr.conn.QueryRow(
		ctx,
		`INSERT INTO medication_logs (user_id, taken_at) VALUES ($1, $2) RETURNING id, taken_at, created_at;`,
		userID,
		takenAt,
	)
	if err := row.Scan(&event.ID, &event.TakenAt, &event.CreatedAt); err != nil {
		return nil, storeError("appending dose event", err)
	}
	return &event, nil
}

func (dr *DoseEventsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.DoseEvent, error) {
	rows, err := dr.conn.Query(
		ctx,
		`SELECT id, user_id, taken_at, created_at FROM medication_logs WHERE user_id = $1 ORDER BY taken_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, storeError("listing dose events", err)
	}
	return collectDoseEvents(rows)
}

func (dr *DoseEventsRepository) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.DoseEvent, error) {
	rows, err := dr.conn.Query(
		ctx,
		`SELECT id, user_id, taken_at, created_at FROM medication_logs WHERE user_id = $1 AND taken_at >= $2 ORDER BY taken_at DESC;`,
		userID,
		since,
	)
	if err != nil {
		return nil, storeError("listing dose events for period", err)
	}
	return collectDoseEvents(rows)
}

func collectDoseEvents(rows pgx.Rows) ([]entity.DoseEvent, error) {
	defer rows.Close()
	result := make([]entity.DoseEvent, 0, 32)
	for rows.Next() {
		var e entity.DoseEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.TakenAt, &e.CreatedAt); err != nil {
			return nil, storeError("dose event row parsing", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("dose event rows", err)
	}
	return result, nil
}
