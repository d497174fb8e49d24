package attendance

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, caller user.Principal) (AttendanceResponse, error)
	CheckOut(ctx context.Context, caller user.Principal) (AttendanceResponse, error)
	// ListFor returns the records the caller's role lets them see.
	ListFor(ctx context.Context, caller user.Principal) ([]AttendanceResponse, error)
}
