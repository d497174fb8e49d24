package calendar

import (
	"context"
	"fmt"

	"github.com/hrconsole/hr-console-backend/internal/domain/calendar"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

var leaveColors = map[leave.Status]string{
	leave.StatusPending:   "orange",
	leave.StatusProcessed: "blue",
	leave.StatusApproved:  "green",
	leave.StatusRejected:  "red",
}

const holidayColor = "green"

type CalendarServiceImpl struct {
	holiday.HolidayService
	leave.LeaveService
}

func NewCalendarService(holidayService holiday.HolidayService, leaveService leave.LeaveService) calendar.CalendarService {
	return &CalendarServiceImpl{
		HolidayService: holidayService,
		LeaveService:   leaveService,
	}
}

// Feed implements calendar.CalendarService. Holidays come first, then leaves.
func (s *CalendarServiceImpl) Feed(ctx context.Context, caller user.Principal) ([]calendar.Entry, error) {
	if err := caller.Authorize(user.PermissionCalendarView); err != nil {
		return nil, err
	}

	holidays, err := s.HolidayService.List(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	leaves, err := s.LeaveService.ListVisible(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaves: %w", err)
	}

	entries := make([]calendar.Entry, 0, len(holidays)+len(leaves))
	for _, h := range holidays {
		entries = append(entries, calendar.Entry{
			ID:    h.ID,
			Title: h.Name,
			Start: h.Date,
			End:   h.Date,
			Type:  calendar.EntryTypeHoliday,
			Color: holidayColor,
		})
	}
	for _, l := range leaves {
		entries = append(entries, calendar.Entry{
			ID:     l.ID,
			Title:  leaveTitle(caller, l),
			Start:  l.FromDate,
			End:    l.ToDate,
			Type:   calendar.EntryTypeLeave,
			Status: string(l.Status),
			Color:  leaveColor(l.Status),
		})
	}
	return entries, nil
}

func leaveTitle(caller user.Principal, l leave.LeaveResponse) string {
	if l.UserID == caller.ID {
		return "Your Leave – " + l.Reason
	}
	name := "Unknown"
	if l.User != nil && l.User.Name != "" {
		name = l.User.Name
	}
	return name + " – " + l.Reason
}

func leaveColor(status leave.Status) string {
	if c, ok := leaveColors[status]; ok {
		return c
	}
	return leaveColors[leave.StatusRejected]
}
