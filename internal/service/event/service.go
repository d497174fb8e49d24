package event

import (
	"context"
	"fmt"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

type EventServiceImpl struct {
	event.EventRepository
	loc *time.Location
}

func NewEventService(eventRepository event.EventRepository, loc *time.Location) event.EventService {
	return &EventServiceImpl{EventRepository: eventRepository, loc: loc}
}

// Add implements event.EventService.
func (s *EventServiceImpl) Add(ctx context.Context, caller user.Principal, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := caller.Authorize(user.PermissionEventManage); err != nil {
		return event.EventResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	date, _ := dateutil.ParseDay(req.Date, s.loc)
	eventType := event.Type(req.Type)
	if eventType == "" {
		eventType = event.TypeOther
	}

	created, err := s.EventRepository.Create(ctx, event.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        eventType,
		CreatedBy:   caller.ID,
	})
	if err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to create event: %w", err)
	}
	return toResponse(created), nil
}

// List implements event.EventService.
func (s *EventServiceImpl) List(ctx context.Context, caller user.Principal) ([]event.EventResponse, error) {
	if err := caller.Authorize(user.PermissionEventView); err != nil {
		return nil, err
	}

	events, err := s.EventRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]event.EventResponse, len(events))
	for i, e := range events {
		responses[i] = toResponse(e)
	}
	return responses, nil
}

// Edit implements event.EventService.
func (s *EventServiceImpl) Edit(ctx context.Context, caller user.Principal, req event.UpdateEventRequest) (event.EventResponse, error) {
	if err := caller.Authorize(user.PermissionEventManage); err != nil {
		return event.EventResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	existing, err := s.EventRepository.GetByID(ctx, req.ID)
	if err != nil {
		return event.EventResponse{}, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Date != nil {
		existing.Date, _ = dateutil.ParseDay(*req.Date, s.loc)
	}
	if req.Time != nil {
		existing.Time = *req.Time
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Type != nil {
		existing.Type = event.Type(*req.Type)
	}

	updated, err := s.EventRepository.Update(ctx, existing)
	if err != nil {
		return event.EventResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements event.EventService.
func (s *EventServiceImpl) Delete(ctx context.Context, caller user.Principal, id string) error {
	if err := caller.Authorize(user.PermissionEventManage); err != nil {
		return err
	}
	return s.EventRepository.Delete(ctx, id)
}

func toResponse(e event.Event) event.EventResponse {
	return event.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        dateutil.Key(e.Date),
		Time:        e.Time,
		Location:    e.Location,
		Type:        string(e.Type),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}
