package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create fails with ErrAlreadyCheckedIn when (UserID, Date) is taken.
	Create(ctx context.Context, r Record) (Record, error)
	GetByUserAndDate(ctx context.Context, userID string, day time.Time) (Record, error)
	UpdateCheckOut(ctx context.Context, id string, checkOut time.Time) (Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	List(ctx context.Context) ([]Record, error)
}
