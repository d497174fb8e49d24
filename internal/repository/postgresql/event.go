package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, title, description, date, time, location, type, COALESCE(created_by::text, ''), created_at, updated_at`

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

func scanEvent(row pgx.Row) (event.Event, error) {
	var e event.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Type, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	e.Date = dateutil.Day(e.Date)
	return e, err
}

func nullableID(id string) interface{} {
	if !validID(id) {
		return nil
	}
	return id
}

func (r *eventRepositoryImpl) Create(ctx context.Context, e event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = newID()
	}

	created, err := scanEvent(q.QueryRow(ctx, `
		INSERT INTO events (id, title, description, date, time, location, type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+eventColumns,
		e.ID, e.Title, e.Description, dateutil.Day(e.Date), e.Time, e.Location, string(e.Type), nullableID(e.CreatedBy),
	))
	if err != nil {
		return event.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return created, nil
}

func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (event.Event, error) {
	if !validID(id) {
		return event.Event{}, event.ErrEventNotFound
	}
	q := GetQuerier(ctx, r.db)

	e, err := scanEvent(q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return event.Event{}, event.ErrEventNotFound
	}
	return e, err
}

func (r *eventRepositoryImpl) List(ctx context.Context) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date, time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepositoryImpl) Update(ctx context.Context, e event.Event) (event.Event, error) {
	if !validID(e.ID) {
		return event.Event{}, event.ErrEventNotFound
	}
	q := GetQuerier(ctx, r.db)

	updated, err := scanEvent(q.QueryRow(ctx, `
		UPDATE events
		SET title = $2, description = $3, date = $4, time = $5, location = $6, type = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+eventColumns,
		e.ID, e.Title, e.Description, dateutil.Day(e.Date), e.Time, e.Location, string(e.Type),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return event.ErrEventNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
