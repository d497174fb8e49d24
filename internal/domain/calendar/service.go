package calendar

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type CalendarService interface {
	// Feed merges all holidays with the leaves visible to the caller.
	Feed(ctx context.Context, caller user.Principal) ([]Entry, error)
}
