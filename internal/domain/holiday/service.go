package holiday

import (
	"context"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type HolidayService interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	// HolidaysBetween returns the holidays in [from, to] keyed by dateutil.Key.
	HolidaysBetween(ctx context.Context, from, to time.Time) (map[string]Holiday, error)

	Add(ctx context.Context, caller user.Principal, req CreateHolidayRequest) (HolidayResponse, error)
	Edit(ctx context.Context, caller user.Principal, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, caller user.Principal, id string) error
	List(ctx context.Context, caller user.Principal) ([]HolidayResponse, error)
}
