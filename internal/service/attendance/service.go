package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

// DefaultWorkDay is how long after check-in the checkout is assumed to be.
const DefaultWorkDay = 9 * time.Hour

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	holiday.HolidayService
	clock   dateutil.Clock
	loc     *time.Location
	workDay time.Duration
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	holidayService holiday.HolidayService,
	clock dateutil.Clock,
	loc *time.Location,
	workDay time.Duration,
) attendance.AttendanceService {
	if workDay <= 0 {
		workDay = DefaultWorkDay
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		HolidayService:       holidayService,
		clock:                clock,
		loc:                  loc,
		workDay:              workDay,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, caller user.Principal) (attendance.AttendanceResponse, error) {
	if err := caller.Authorize(user.PermissionAttendanceRecord); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := dateutil.DayIn(now, a.loc)

	if dateutil.IsWeekend(today) {
		return attendance.AttendanceResponse{}, attendance.ErrWeekendOrHoliday
	}
	isHoliday, err := a.HolidayService.IsHoliday(ctx, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if isHoliday {
		return attendance.AttendanceResponse{}, attendance.ErrWeekendOrHoliday
	}

	_, err = a.AttendanceRepository.GetByUserAndDate(ctx, caller.ID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	// A concurrent check-in that slipped past the lookup is rejected by the
	// store's (user, day) uniqueness with ErrAlreadyCheckedIn.
	record, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		UserID:   caller.ID,
		Date:     today,
		CheckIn:  now,
		CheckOut: now.Add(a.workDay),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Checked in", "user_id", caller.ID, "date", dateutil.Key(today))
	return a.toResponse(record, nil), nil
}

// CheckOut implements attendance.AttendanceService. Repeated checkouts
// overwrite the previous time.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, caller user.Principal) (attendance.AttendanceResponse, error) {
	if err := caller.Authorize(user.PermissionAttendanceRecord); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := dateutil.DayIn(now, a.loc)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, caller.ID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoCheckIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.UpdateCheckOut(ctx, record.ID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update checkout: %w", err)
	}

	slog.Info("Checked out", "user_id", caller.ID, "date", dateutil.Key(today))
	return a.toResponse(updated, nil), nil
}

// ListFor implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListFor(ctx context.Context, caller user.Principal) ([]attendance.AttendanceResponse, error) {
	if err := caller.Authorize(user.PermissionAttendanceView); err != nil {
		return nil, err
	}

	var (
		records []attendance.Record
		err     error
	)
	if caller.Role == user.RoleUser {
		records, err = a.AttendanceRepository.ListByUser(ctx, caller.ID)
	} else {
		records, err = a.AttendanceRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.UserID)
	}
	users, err := a.UserRepository.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve attendance owners: %w", err)
	}
	owners := user.IndexByID(users)

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		owner, known := owners[r.UserID]
		if !caller.CanAccess(r.UserID, owner.Role) {
			continue
		}
		var o *user.Owner
		if known {
			ow := owner.Owner()
			o = &ow
		}
		responses = append(responses, a.toResponse(r, o))
	}
	return responses, nil
}

func (a *AttendanceServiceImpl) toResponse(r attendance.Record, owner *user.Owner) attendance.AttendanceResponse {
	loc := a.loc
	if loc == nil {
		loc = time.UTC
	}
	return attendance.AttendanceResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Date:         dateutil.Key(r.Date),
		CheckInTime:  r.CheckIn.In(loc).Format(time.RFC3339),
		CheckOutTime: r.CheckOut.In(loc).Format(time.RFC3339),
		User:         owner,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
