package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

type eventRepository struct {
	mu     sync.RWMutex
	events map[string]event.Event
}

func NewEventRepository() event.EventRepository {
	return &eventRepository{events: make(map[string]event.Event)}
}

func (r *eventRepository) Create(ctx context.Context, e event.Event) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = newID()
	}
	e.Date = dateutil.Day(e.Date)
	ts := now()
	e.CreatedAt, e.UpdatedAt = ts, ts
	r.events[e.ID] = e
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return event.Event{}, event.ErrEventNotFound
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]event.Event, 0, len(r.events))
	for _, e := range r.events {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Time < result[j].Time
	})
	return result, nil
}

func (r *eventRepository) Update(ctx context.Context, e event.Event) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.events[e.ID]
	if !ok {
		return event.Event{}, event.ErrEventNotFound
	}
	e.Date = dateutil.Day(e.Date)
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = now()
	r.events[e.ID] = e
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return event.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}
