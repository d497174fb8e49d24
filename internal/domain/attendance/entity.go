package attendance

import (
	"time"
)

// Record is one person's attendance for one calendar day.
type Record struct {
	ID       string
	UserID   string
	Date     time.Time // calendar day, UTC midnight
	CheckIn  time.Time
	CheckOut time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
