package leave

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a final superadmin decision.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest covers the calendar days FromDate..ToDate inclusive.
type LeaveRequest struct {
	ID        string
	UserID    string
	Reason    string
	FromDate  time.Time
	ToDate    time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
