package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, user_id, date, checkin_time, checkout_time, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.CreatedAt, &rec.UpdatedAt)
	rec.Date = dateutil.Day(rec.Date)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if rec.ID == "" {
		rec.ID = newID()
	}

	query := `
		INSERT INTO attendances (id, user_id, date, checkin_time, checkout_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		rec.ID, rec.UserID, dateutil.Day(rec.Date), rec.CheckIn, rec.CheckOut,
	))
	if err != nil {
		if isUniqueViolation(err, "attendances_user_id_date_key") {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (attendance.Record, error) {
	if !validID(userID) {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	q := GetQuerier(ctx, a.db)

	rec, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE user_id = $1 AND date = $2`,
		userID, dateutil.Day(day),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return rec, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Record, error) {
	if !validID(id) {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	q := GetQuerier(ctx, a.db)

	rec, err := scanAttendance(q.QueryRow(ctx, `
		UPDATE attendances SET checkout_time = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+attendanceColumns,
		id, checkOut,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update checkout: %w", err)
	}
	return rec, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	if !validID(userID) {
		return nil, nil
	}
	return a.query(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE user_id = $1 ORDER BY checkin_time, id`, userID)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	return a.query(ctx, `SELECT `+attendanceColumns+` FROM attendances ORDER BY checkin_time, id`)
}

func (a *attendanceRepository) query(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
