package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave request storage
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
}
