package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

type holidayRepository struct {
	mu       sync.RWMutex
	holidays map[string]holiday.Holiday
}

func NewHolidayRepository() holiday.HolidayRepository {
	return &holidayRepository{holidays: make(map[string]holiday.Holiday)}
}

func (r *holidayRepository) dateTakenLocked(day time.Time, exceptID string) bool {
	for id, h := range r.holidays {
		if id != exceptID && h.Date.Equal(day) {
			return true
		}
	}
	return false
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.Date = dateutil.Day(h.Date)
	if r.dateTakenLocked(h.Date, "") {
		return holiday.Holiday{}, holiday.ErrDuplicateDate
	}
	if h.ID == "" {
		h.ID = newID()
	}
	ts := now()
	h.CreatedAt, h.UpdatedAt = ts, ts
	r.holidays[h.ID] = h
	return h, nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (r *holidayRepository) GetByDate(ctx context.Context, day time.Time) (holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day = dateutil.Day(day)
	for _, h := range r.holidays {
		if h.Date.Equal(day) {
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (r *holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	from, to = dateutil.Day(from), dateutil.Day(to)
	var result []holiday.Holiday
	for _, h := range r.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			result = append(result, h)
		}
	}
	sortHolidays(result)
	return result, nil
}

func (r *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]holiday.Holiday, 0, len(r.holidays))
	for _, h := range r.holidays {
		result = append(result, h)
	}
	sortHolidays(result)
	return result, nil
}

func (r *holidayRepository) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.holidays[h.ID]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	h.Date = dateutil.Day(h.Date)
	if r.dateTakenLocked(h.Date, h.ID) {
		return holiday.Holiday{}, holiday.ErrDuplicateDate
	}
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = now()
	r.holidays[h.ID] = h
	return h, nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	return nil
}

func sortHolidays(hs []holiday.Holiday) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}
