package holiday

import (
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := dateutil.ParseDay(r.Date, nil); !ok {
		errs.Add("date", "date must be YYYY-MM-DD or an ISO8601 timestamp")
	}

	if r.Type != "" && !Type(r.Type).IsValid() {
		errs.Add("type", "type must be one of Public, Restricted, Company")
	}

	return errs.Err()
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Date != nil {
		if _, ok := dateutil.ParseDay(*r.Date, nil); !ok {
			errs.Add("date", "date must be YYYY-MM-DD or an ISO8601 timestamp")
		}
	}
	if r.Type != nil && !Type(*r.Type).IsValid() {
		errs.Add("type", "type must be one of Public, Restricted, Company")
	}

	return errs.Err()
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
