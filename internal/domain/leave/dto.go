package leave

import (
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	Reason   string `json:"reason"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// Validate only checks presence. Date parsing and calendar rules are applied
// by the service.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("reason", r.Reason)
	errs.Required("from_date", r.FromDate)
	errs.Required("to_date", r.ToDate)

	return errs.Err()
}

type DecideLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	if !Status(r.Status).IsDecision() {
		errs.Add("status", "status must be approved or rejected")
	}

	return errs.Err()
}

type LeaveResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Reason    string      `json:"reason"`
	FromDate  string      `json:"from_date"`
	ToDate    string      `json:"to_date"`
	Status    Status      `json:"status"`
	User      *user.Owner `json:"user,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
