package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
)

type leaveRepository struct {
	mu     sync.RWMutex
	leaves map[string]leave.LeaveRequest
}

func NewLeaveRepository() leave.LeaveRequestRepository {
	return &leaveRepository{leaves: make(map[string]leave.LeaveRequest)}
}

func (r *leaveRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		request.ID = newID()
	}
	ts := now()
	request.CreatedAt, request.UpdatedAt = ts, ts
	r.leaves[request.ID] = request
	return request, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return l, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return r.list(func(l leave.LeaveRequest) bool { return l.UserID == userID }), nil
}

func (r *leaveRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(func(leave.LeaveRequest) bool { return true }), nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	l.Status = status
	l.UpdatedAt = now()
	r.leaves[id] = l
	return l, nil
}

func (r *leaveRepository) list(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveRequest
	for _, l := range r.leaves {
		if keep(l) {
			result = append(result, l)
		}
	}
	sortByCreated(result,
		func(l leave.LeaveRequest) time.Time { return l.CreatedAt },
		func(l leave.LeaveRequest) string { return l.ID },
	)
	return result
}
