package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	user.UserRepository
	checker rangeChecker
}

func NewLeaveService(
	leaveRequestRepository leave.LeaveRequestRepository,
	userRepository user.UserRepository,
	holidayService holiday.HolidayService,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		UserRepository:         userRepository,
		checker:                rangeChecker{HolidayService: holidayService, loc: loc},
	}
}

// ApplyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApplyLeave(ctx context.Context, caller user.Principal, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := caller.Authorize(user.PermissionLeaveApply); err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("%w: %w", leave.ErrMissingField, err)
	}

	from, to, err := l.checker.parseRange(req.FromDate, req.ToDate)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := l.checker.check(ctx, from, to); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Admins are trusted with their own time off.
	status := leave.StatusPending
	if caller.Role == user.RoleAdmin {
		status = leave.StatusApproved
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:   caller.ID,
		Reason:   req.Reason,
		FromDate: from,
		ToDate:   to,
		Status:   status,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave applied", "leave_id", created.ID, "user_id", caller.ID, "status", created.Status)
	return toResponse(created, nil), nil
}

// GetMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaves(ctx context.Context, caller user.Principal) ([]leave.LeaveResponse, error) {
	if err := caller.Authorize(user.PermissionLeaveViewOwn); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, len(requests))
	for i, r := range requests {
		responses[i] = toResponse(r, nil)
	}
	return responses, nil
}

// ProcessLeave implements leave.LeaveService. The prior status is not checked.
func (l *LeaveServiceImpl) ProcessLeave(ctx context.Context, caller user.Principal, id string) (leave.LeaveResponse, error) {
	if err := caller.Authorize(user.PermissionLeaveProcess); err != nil {
		return leave.LeaveResponse{}, err
	}
	return l.transition(ctx, caller, id, leave.StatusProcessed)
}

// ApproveRejectLeave implements leave.LeaveService. The prior status is not checked.
func (l *LeaveServiceImpl) ApproveRejectLeave(ctx context.Context, caller user.Principal, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := caller.Authorize(user.PermissionLeaveDecide); err != nil {
		return leave.LeaveResponse{}, err
	}
	if !leave.Status(req.Status).IsDecision() {
		return leave.LeaveResponse{}, leave.ErrInvalidStatus
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	return l.transition(ctx, caller, req.ID, leave.Status(req.Status))
}

func (l *LeaveServiceImpl) transition(ctx context.Context, caller user.Principal, id string, status leave.Status) (leave.LeaveResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	owner, err := l.owner(ctx, request.UserID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !caller.CanAccess(request.UserID, owner.Role) {
		slog.Warn("Leave transition denied", "leave_id", id, "caller_id", caller.ID, "owner_id", request.UserID)
		return leave.LeaveResponse{}, user.ErrForbidden
	}

	updated, err := l.LeaveRequestRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave status changed", "leave_id", id, "from", request.Status, "to", status, "by", caller.ID)
	return toResponse(updated, ownerPtr(owner)), nil
}

// owner looks up the person behind a leave. A deleted owner resolves to an
// empty identity so the leave is still reachable by a superadmin.
func (l *LeaveServiceImpl) owner(ctx context.Context, userID string) (user.User, error) {
	owners, err := l.UserRepository.ListByIDs(ctx, []string{userID})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to resolve leave owner: %w", err)
	}
	if len(owners) == 0 {
		return user.User{ID: userID}, nil
	}
	return owners[0], nil
}

// GetAllLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetAllLeaves(ctx context.Context, caller user.Principal) ([]leave.LeaveResponse, error) {
	if err := caller.Authorize(user.PermissionLeaveViewAll); err != nil {
		return nil, err
	}
	return l.visible(ctx, caller)
}

// ListVisible implements leave.LeaveService.
func (l *LeaveServiceImpl) ListVisible(ctx context.Context, caller user.Principal) ([]leave.LeaveResponse, error) {
	if err := caller.Authorize(user.PermissionLeaveViewOwn); err != nil {
		return nil, err
	}
	return l.visible(ctx, caller)
}

func (l *LeaveServiceImpl) visible(ctx context.Context, caller user.Principal) ([]leave.LeaveResponse, error) {
	var (
		requests []leave.LeaveRequest
		err      error
	)
	if caller.Role == user.RoleUser {
		requests, err = l.LeaveRequestRepository.ListByUser(ctx, caller.ID)
	} else {
		requests, err = l.LeaveRequestRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.UserID)
	}
	users, err := l.UserRepository.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve leave owners: %w", err)
	}
	owners := user.IndexByID(users)

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		owner, known := owners[r.UserID]
		if !caller.CanAccess(r.UserID, owner.Role) {
			continue
		}
		var o *user.Owner
		if known {
			o = ownerPtr(owner)
		}
		responses = append(responses, toResponse(r, o))
	}
	return responses, nil
}

func ownerPtr(u user.User) *user.Owner {
	if u.Email == "" && u.Name == "" {
		return nil
	}
	o := u.Owner()
	return &o
}

func toResponse(r leave.LeaveRequest, owner *user.Owner) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Reason:    r.Reason,
		FromDate:  dateutil.Key(r.FromDate),
		ToDate:    dateutil.Key(r.ToDate),
		Status:    r.Status,
		User:      owner,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}
