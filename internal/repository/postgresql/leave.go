package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `id, user_id, reason, from_date, to_date, status, created_at, updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(&l.ID, &l.UserID, &l.Reason, &l.FromDate, &l.ToDate, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	l.FromDate, l.ToDate = dateutil.Day(l.FromDate), dateutil.Day(l.ToDate)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = newID()
	}

	created, err := scanLeave(q.QueryRow(ctx, `
		INSERT INTO leave_requests (id, user_id, reason, from_date, to_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+leaveColumns,
		request.ID,
		request.UserID,
		request.Reason,
		dateutil.Day(request.FromDate),
		dateutil.Day(request.ToDate),
		string(request.Status),
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("insert leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if !validID(id) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return l, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	if !validID(userID) {
		return nil, nil
	}
	return r.query(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE user_id = $1 ORDER BY created_at, id`, userID)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.query(ctx, `SELECT `+leaveColumns+` FROM leave_requests ORDER BY created_at, id`)
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	if !validID(id) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, `
		UPDATE leave_requests SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+leaveColumns,
		id, string(status),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("update leave status: %w", err)
	}
	return l, nil
}

func (r *leaveRequestRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
