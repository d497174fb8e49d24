package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

type attendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Record
	byDay   map[string]string // userID|day -> record id
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepository{
		records: make(map[string]attendance.Record),
		byDay:   make(map[string]string),
	}
}

func dayKey(userID string, day time.Time) string {
	return userID + "|" + dateutil.Key(day)
}

func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Date = dateutil.Day(rec.Date)
	key := dayKey(rec.UserID, rec.Date)
	if _, exists := r.byDay[key]; exists {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	if rec.ID == "" {
		rec.ID = newID()
	}
	ts := now()
	rec.CreatedAt, rec.UpdatedAt = ts, ts
	r.records[rec.ID] = rec
	r.byDay[key] = rec.ID
	return rec, nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDay[dayKey(userID, day)]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return r.records[id], nil
}

func (r *attendanceRepository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	rec.CheckOut = checkOut
	rec.UpdatedAt = now()
	r.records[id] = rec
	return rec, nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	return r.list(func(rec attendance.Record) bool { return rec.UserID == userID }), nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	return r.list(func(attendance.Record) bool { return true }), nil
}

func (r *attendanceRepository) list(keep func(attendance.Record) bool) []attendance.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Record
	for _, rec := range r.records {
		if keep(rec) {
			result = append(result, rec)
		}
	}
	sortByCreated(result,
		func(rec attendance.Record) time.Time { return rec.CheckIn },
		func(rec attendance.Record) string { return rec.ID },
	)
	return result
}
