package event

import (
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("title", r.Title)
	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := dateutil.ParseDay(r.Date, nil); !ok {
		errs.Add("date", "date must be YYYY-MM-DD or an ISO8601 timestamp")
	}
	if r.Time != "" && !validator.IsValidClockTime(r.Time) {
		errs.Add("time", "time must be HH:MM")
	}
	if r.Type != "" && !validator.IsInSlice(r.Type, validTypes) {
		errs.Add("type", "invalid event type")
	}

	return errs.Err()
}

type UpdateEventRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Location    *string `json:"location,omitempty"`
	Type        *string `json:"type,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}
	if r.Date != nil {
		if _, ok := dateutil.ParseDay(*r.Date, nil); !ok {
			errs.Add("date", "date must be YYYY-MM-DD or an ISO8601 timestamp")
		}
	}
	if r.Time != nil && *r.Time != "" && !validator.IsValidClockTime(*r.Time) {
		errs.Add("time", "time must be HH:MM")
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, validTypes) {
		errs.Add("type", "invalid event type")
	}

	return errs.Err()
}

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
