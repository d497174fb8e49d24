package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	loc *time.Location
}

// NewHolidayService returns a holiday calendar that reads timestamps as
// calendar days in loc.
func NewHolidayService(holidayRepository holiday.HolidayRepository, loc *time.Location) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepository, loc: loc}
}

// IsHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	_, err := s.HolidayRepository.GetByDate(ctx, dateutil.DayIn(date, s.loc))
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up holiday: %w", err)
	}
	return true, nil
}

// HolidaysBetween implements holiday.HolidayService.
func (s *HolidayServiceImpl) HolidaysBetween(ctx context.Context, from, to time.Time) (map[string]holiday.Holiday, error) {
	holidays, err := s.HolidayRepository.ListBetween(ctx, dateutil.Day(from), dateutil.Day(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	byDay := make(map[string]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		byDay[dateutil.Key(h.Date)] = h
	}
	return byDay, nil
}

// Add implements holiday.HolidayService.
func (s *HolidayServiceImpl) Add(ctx context.Context, caller user.Principal, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := caller.Authorize(user.PermissionHolidayManage); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := dateutil.ParseDay(req.Date, s.loc)
	holidayType := holiday.Type(req.Type)
	if holidayType == "" {
		holidayType = holiday.TypePublic
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holidayType,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toResponse(created), nil
}

// Edit implements holiday.HolidayService.
func (s *HolidayServiceImpl) Edit(ctx context.Context, caller user.Principal, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := caller.Authorize(user.PermissionHolidayManage); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Date != nil {
		existing.Date, _ = dateutil.ParseDay(*req.Date, s.loc)
	}
	if req.Type != nil {
		existing.Type = holiday.Type(*req.Type)
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}

	updated, err := s.HolidayRepository.Update(ctx, existing)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, caller user.Principal, id string) error {
	if err := caller.Authorize(user.PermissionHolidayManage); err != nil {
		return err
	}
	return s.HolidayRepository.Delete(ctx, id)
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, caller user.Principal) ([]holiday.HolidayResponse, error) {
	if err := caller.Authorize(user.PermissionHolidayView); err != nil {
		return nil, err
	}

	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, len(holidays))
	for i, h := range holidays {
		responses[i] = toResponse(h)
	}
	return responses, nil
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        dateutil.Key(h.Date),
		Type:        string(h.Type),
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   h.UpdatedAt.Format(time.RFC3339),
	}
}
