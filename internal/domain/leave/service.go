package leave

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type LeaveService interface {
	ApplyLeave(ctx context.Context, caller user.Principal, req ApplyLeaveRequest) (LeaveResponse, error)
	GetMyLeaves(ctx context.Context, caller user.Principal) ([]LeaveResponse, error)

	ProcessLeave(ctx context.Context, caller user.Principal, id string) (LeaveResponse, error)
	ApproveRejectLeave(ctx context.Context, caller user.Principal, req DecideLeaveRequest) (LeaveResponse, error)

	GetAllLeaves(ctx context.Context, caller user.Principal) ([]LeaveResponse, error)
	// ListVisible returns every leave whose owner the caller may access.
	ListVisible(ctx context.Context, caller user.Principal) ([]LeaveResponse, error)
}
