package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
)

// rangeChecker decides whether a day range may be taken as leave.
type rangeChecker struct {
	holiday.HolidayService
	loc *time.Location
}

// parseRange turns the raw request dates into an ordered pair of calendar days.
func (c rangeChecker) parseRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, ok := dateutil.ParseDay(fromRaw, c.loc)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date %q", leave.ErrInvalidDate, fromRaw)
	}
	to, ok := dateutil.ParseDay(toRaw, c.loc)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to_date %q", leave.ErrInvalidDate, toRaw)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, leave.ErrInvalidRange
	}
	return from, to, nil
}

// check walks the range twice: every weekend day is reported before any
// holiday, so a range with both fails on the first weekend. The weekend pass
// stops at the first Saturday or Sunday, which leaves at most five weekdays
// for the holiday pass.
func (c rangeChecker) check(ctx context.Context, from, to time.Time) error {
	for d := range dateutil.Days(from, to) {
		if dateutil.IsWeekend(d) {
			return fmt.Errorf("%w: %s", leave.ErrWeekendDate, dateutil.Display(d))
		}
	}

	holidays, err := c.HolidayService.HolidaysBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	if len(holidays) == 0 {
		return nil
	}
	for d := range dateutil.Days(from, to) {
		if h, ok := holidays[dateutil.Key(d)]; ok {
			return fmt.Errorf("%w: %s (%s)", leave.ErrHolidayDate, dateutil.Display(d), h.Name)
		}
	}
	return nil
}
