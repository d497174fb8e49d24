package employee

import (
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

const minPasswordLength = 8

// EmployeeFields are the editable employee attributes shared by create and update.
type EmployeeFields struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone_no"`
	Position        string `json:"position,omitempty"`
	EmployeeNo      string `json:"employee_no"`
	PersonalEmail   string `json:"personal_email,omitempty"`
	EmergencyPhone  string `json:"emergency_phone,omitempty"`
	DateOfBirth     string `json:"date_of_birth,omitempty"`
	DateOfJoining   string `json:"date_of_joining,omitempty"`
	DateOfRelieving string `json:"date_of_relieving,omitempty"`
	BloodGroup      string `json:"blood_group,omitempty"`
	Education       string `json:"education,omitempty"`
	ReportTo        string `json:"report_to,omitempty"`
	LeavesPerMonth  int    `json:"leaves_per_month"`
	UserType        string `json:"user_type,omitempty"`
	Active          *bool  `json:"active,omitempty"`
	Address         string `json:"address,omitempty"`
	Image           string `json:"image,omitempty"`
}

func (f *EmployeeFields) validate(errs *validator.ValidationErrors) {
	errs.Required("name", f.Name)

	if validator.IsEmpty(f.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(f.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if validator.IsEmpty(f.Phone) {
		errs.Add("phone_no", "phone_no is required")
	} else if !validator.IsValidPhoneNumber(f.Phone) {
		errs.Add("phone_no", "phone_no must be 10-15 digits")
	}

	errs.Required("employee_no", f.EmployeeNo)

	if f.PersonalEmail != "" && !validator.IsValidEmail(f.PersonalEmail) {
		errs.Add("personal_email", "personal_email must be a valid email address")
	}
	if f.EmergencyPhone != "" && !validator.IsValidPhoneNumber(f.EmergencyPhone) {
		errs.Add("emergency_phone", "emergency_phone must be 10-15 digits")
	}

	dates := []struct{ field, value string }{
		{"date_of_birth", f.DateOfBirth},
		{"date_of_joining", f.DateOfJoining},
		{"date_of_relieving", f.DateOfRelieving},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, ok := validator.IsValidDate(d.value); !ok {
			errs.Add(d.field, d.field+" must be in YYYY-MM-DD format")
		}
	}

	if f.LeavesPerMonth < 0 {
		errs.Add("leaves_per_month", "leaves_per_month must not be negative")
	}
}

// Profile builds the stored profile. Employees are active unless stated otherwise.
func (f *EmployeeFields) Profile() *user.EmployeeProfile {
	active := true
	if f.Active != nil {
		active = *f.Active
	}
	return &user.EmployeeProfile{
		EmployeeNo:      f.EmployeeNo,
		PersonalEmail:   f.PersonalEmail,
		EmergencyPhone:  f.EmergencyPhone,
		DateOfBirth:     f.DateOfBirth,
		DateOfJoining:   f.DateOfJoining,
		DateOfRelieving: f.DateOfRelieving,
		BloodGroup:      f.BloodGroup,
		Education:       f.Education,
		ReportTo:        f.ReportTo,
		LeavesPerMonth:  f.LeavesPerMonth,
		UserType:        f.UserType,
		Active:          active,
		Address:         f.Address,
		Image:           f.Image,
	}
}

type CreateEmployeeRequest struct {
	EmployeeFields
	Password string `json:"password"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeFields.validate(&errs)
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < minPasswordLength {
		errs.Add("password", "password must be at least 8 characters long")
	}

	return errs.Err()
}

// UpdateEmployeeRequest replaces the employee record. Password is only
// changed when a new one is sent.
type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	EmployeeFields
	Password string `json:"password,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	r.EmployeeFields.validate(&errs)
	if r.Password != "" && len(r.Password) < minPasswordLength {
		errs.Add("password", "password must be at least 8 characters long")
	}

	return errs.Err()
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone_no"`
	Position string `json:"position,omitempty"`
	Role     string `json:"role"`
	user.EmployeeProfile
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
