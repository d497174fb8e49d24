package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/repository/memory"
	holidaysvc "github.com/hrconsole/hr-console-backend/internal/service/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      leave.LeaveService
	holidays holiday.HolidayService
	leaves   leave.LeaveRequestRepository
	users    user.UserRepository

	employee   user.Principal
	admin      user.Principal
	otherAdmin user.Principal
	superadmin user.Principal
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepository()
	leaves := memory.NewLeaveRepository()
	holidays := holidaysvc.NewHolidayService(memory.NewHolidayRepository(), time.UTC)

	create := func(name string, role user.Role) user.Principal {
		u, err := users.Create(ctx, user.User{Name: name, Email: name + "@example.com", Role: role})
		require.NoError(t, err)
		return u.Principal()
	}

	return fixture{
		svc:        NewLeaveService(leaves, users, holidays, time.UTC),
		holidays:   holidays,
		leaves:     leaves,
		users:      users,
		employee:   create("employee", user.RoleUser),
		admin:      create("admin", user.RoleAdmin),
		otherAdmin: create("other", user.RoleAdmin),
		superadmin: create("root", user.RoleSuperAdmin),
	}
}

func apply(from, to string) leave.ApplyLeaveRequest {
	return leave.ApplyLeaveRequest{Reason: "family", FromDate: from, ToDate: to}
}

func TestApplyLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("weekday range by user is pending", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.svc.ApplyLeave(ctx, f.employee, apply("2024-06-03", "2024-06-05"))
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, got.Status)
		assert.Equal(t, "2024-06-03", got.FromDate)
		assert.Equal(t, "2024-06-05", got.ToDate)
		assert.Equal(t, f.employee.ID, got.UserID)
	})

	t.Run("admin leave is approved", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.svc.ApplyLeave(ctx, f.admin, apply("2024-06-03", "2024-06-03"))
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, got.Status)
	})

	t.Run("superadmin leave is pending", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.svc.ApplyLeave(ctx, f.superadmin, apply("2024-06-03", "2024-06-03"))
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("huge range stops at the first weekend", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ApplyLeave(ctx, f.employee, apply("0001-01-01", "9999-12-31"))
		require.ErrorIs(t, err, leave.ErrWeekendDate)
		assert.Contains(t, err.Error(), "Sat Jan 06 0001")

		all, err := f.leaves.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("timestamps are accepted", func(t *testing.T) {
		f := newFixture(t)
		got, err := f.svc.ApplyLeave(ctx, f.employee, apply("2024-06-03T00:00:00.000Z", "2024-06-04T00:00:00.000Z"))
		require.NoError(t, err)
		assert.Equal(t, "2024-06-04", got.ToDate)
	})
}

func TestApplyLeave_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.holidays.Add(ctx, f.admin, holiday.CreateHolidayRequest{Name: "Company Day", Date: "2024-06-05"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     leave.ApplyLeaveRequest
		wantErr error
		wantMsg string
	}{
		{"missing reason", leave.ApplyLeaveRequest{FromDate: "2024-06-03", ToDate: "2024-06-03"}, leave.ErrMissingField, ""},
		{"blank dates", leave.ApplyLeaveRequest{Reason: "x", FromDate: " ", ToDate: ""}, leave.ErrMissingField, ""},
		{"unparseable date", apply("03/06/2024", "2024-06-04"), leave.ErrInvalidDate, ""},
		{"reversed range", apply("2024-06-04", "2024-06-03"), leave.ErrInvalidRange, ""},
		{"saturday only", apply("2024-06-08", "2024-06-08"), leave.ErrWeekendDate, "Sat Jun 08 2024"},
		{"holiday in range", apply("2024-06-04", "2024-06-06"), leave.ErrHolidayDate, "Wed Jun 05 2024"},
		{"weekend reported before earlier holiday", apply("2024-06-05", "2024-06-09"), leave.ErrWeekendDate, "Sat Jun 08 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ApplyLeave(ctx, f.employee, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}

	mine, err := f.svc.GetMyLeaves(ctx, f.employee)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestProcessLeave(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	applied, err := f.svc.ApplyLeave(ctx, f.employee, apply("2024-06-03", "2024-06-03"))
	require.NoError(t, err)

	_, err = f.svc.ProcessLeave(ctx, f.employee, applied.ID)
	assert.ErrorIs(t, err, user.ErrForbidden)

	processed, err := f.svc.ProcessLeave(ctx, f.admin, applied.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusProcessed, processed.Status)
	require.NotNil(t, processed.User)
	assert.Equal(t, "employee", processed.User.Name)

	// No precondition on the prior status.
	_, err = f.svc.ApproveRejectLeave(ctx, f.superadmin, leave.DecideLeaveRequest{ID: applied.ID, Status: "approved"})
	require.NoError(t, err)
	again, err := f.svc.ProcessLeave(ctx, f.superadmin, applied.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusProcessed, again.Status)

	_, err = f.svc.ProcessLeave(ctx, f.admin, "missing")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestProcessLeave_AdminCannotTouchOtherAdmins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	applied, err := f.svc.ApplyLeave(ctx, f.otherAdmin, apply("2024-06-03", "2024-06-03"))
	require.NoError(t, err)

	_, err = f.svc.ProcessLeave(ctx, f.admin, applied.ID)
	assert.ErrorIs(t, err, user.ErrForbidden)

	_, err = f.svc.ProcessLeave(ctx, f.otherAdmin, applied.ID)
	assert.NoError(t, err)
}

func TestApproveRejectLeave(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	applied, err := f.svc.ApplyLeave(ctx, f.employee, apply("2024-06-03", "2024-06-03"))
	require.NoError(t, err)

	_, err = f.svc.ApproveRejectLeave(ctx, f.admin, leave.DecideLeaveRequest{ID: applied.ID, Status: "approved"})
	assert.ErrorIs(t, err, user.ErrForbidden)

	_, err = f.svc.ApproveRejectLeave(ctx, f.superadmin, leave.DecideLeaveRequest{ID: applied.ID, Status: "processed"})
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)

	stored, err := f.leaves.GetByID(ctx, applied.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, stored.Status)

	rejected, err := f.svc.ApproveRejectLeave(ctx, f.superadmin, leave.DecideLeaveRequest{ID: applied.ID, Status: "rejected"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)

	approved, err := f.svc.ApproveRejectLeave(ctx, f.superadmin, leave.DecideLeaveRequest{ID: applied.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	_, err = f.svc.ApproveRejectLeave(ctx, f.superadmin, leave.DecideLeaveRequest{ID: "missing", Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveListings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, p := range []user.Principal{f.employee, f.admin, f.otherAdmin, f.superadmin} {
		_, err := f.svc.ApplyLeave(ctx, p, apply("2024-06-03", "2024-06-03"))
		require.NoError(t, err)
	}

	mine, err := f.svc.GetMyLeaves(ctx, f.employee)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.employee.ID, mine[0].UserID)

	_, err = f.svc.GetAllLeaves(ctx, f.employee)
	assert.ErrorIs(t, err, user.ErrForbidden)

	adminView, err := f.svc.GetAllLeaves(ctx, f.admin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{f.employee.ID, f.admin.ID}, ownerIDs(adminView))
	for _, l := range adminView {
		require.NotNil(t, l.User)
		assert.NotEmpty(t, l.User.Email)
	}

	all, err := f.svc.GetAllLeaves(ctx, f.superadmin)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	visible, err := f.svc.ListVisible(ctx, f.employee)
	require.NoError(t, err)
	assert.Equal(t, []string{f.employee.ID}, ownerIDs(visible))
}

func ownerIDs(leaves []leave.LeaveResponse) []string {
	ids := make([]string, len(leaves))
	for i, l := range leaves {
		ids[i] = l.UserID
	}
	return ids
}

func TestLeave_OwnerDeleted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	applied, err := f.svc.ApplyLeave(ctx, f.employee, apply("2024-06-03", "2024-06-03"))
	require.NoError(t, err)
	require.NoError(t, f.users.Delete(ctx, f.employee.ID))

	all, err := f.svc.GetAllLeaves(ctx, f.superadmin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, applied.ID, all[0].ID)

	decided, err := f.svc.ApproveRejectLeave(ctx, f.superadmin, leave.DecideLeaveRequest{ID: applied.ID, Status: string(leave.StatusApproved)})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
}
