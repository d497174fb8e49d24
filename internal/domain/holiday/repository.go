package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Create fails with ErrDuplicateDate when a holiday already occupies the day.
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	GetByDate(ctx context.Context, day time.Time) (Holiday, error)
	// ListBetween returns holidays within [from, to] ordered by date.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
