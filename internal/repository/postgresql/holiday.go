package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = `id, name, date, type, description, created_at, updated_at`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Description, &h.CreatedAt, &h.UpdatedAt)
	h.Date = dateutil.Day(h.Date)
	return h, err
}

func (r *holidayRepositoryImpl) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = newID()
	}

	created, err := scanHoliday(q.QueryRow(ctx, `
		INSERT INTO holidays (id, name, date, type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+holidayColumns,
		h.ID, h.Name, dateutil.Day(h.Date), string(h.Type), h.Description,
	))
	if err != nil {
		if isUniqueViolation(err, "holidays_date_key") {
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
		return holiday.Holiday{}, fmt.Errorf("insert holiday: %w", err)
	}
	return created, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	if !validID(id) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, err
}

func (r *holidayRepositoryImpl) GetByDate(ctx context.Context, day time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE date = $1`, dateutil.Day(day)))
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, err
}

func (r *holidayRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return r.queryHolidays(ctx,
		`SELECT `+holidayColumns+` FROM holidays WHERE date BETWEEN $1 AND $2 ORDER BY date`,
		dateutil.Day(from), dateutil.Day(to),
	)
}

func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	return r.queryHolidays(ctx, `SELECT `+holidayColumns+` FROM holidays ORDER BY date`)
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	if !validID(h.ID) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	q := GetQuerier(ctx, r.db)

	updated, err := scanHoliday(q.QueryRow(ctx, `
		UPDATE holidays
		SET name = $2, date = $3, type = $4, description = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+holidayColumns,
		h.ID, h.Name, dateutil.Day(h.Date), string(h.Type), h.Description,
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		case isUniqueViolation(err, "holidays_date_key"):
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
		return holiday.Holiday{}, fmt.Errorf("update holiday: %w", err)
	}
	return updated, nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return holiday.ErrHolidayNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
