package admin

import (
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

const minPasswordLength = 8

type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
	Position string `json:"position"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (r *CreateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if validator.IsEmpty(r.Phone) {
		errs.Add("phone_number", "phone_number is required")
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone_number", "phone_number must be 10-15 digits")
	}

	errs.Required("position", r.Position)

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < minPasswordLength {
		errs.Add("password", "password must be at least 8 characters long")
	}

	if r.Role != "" && !user.Role(r.Role).IsAdminTier() {
		errs.Add("role", "role must be admin or superadmin")
	}

	return errs.Err()
}

// RoleOrDefault returns the requested role, admin when none was given.
func (r *CreateAdminRequest) RoleOrDefault() user.Role {
	if r.Role == "" {
		return user.RoleAdmin
	}
	return user.Role(r.Role)
}

type UpdateAdminRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone_number,omitempty"`
	Position *string `json:"position,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (r *UpdateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone_number", "phone_number must be 10-15 digits")
	}
	if r.Password != nil && *r.Password != "" && len(*r.Password) < minPasswordLength {
		errs.Add("password", "password must be at least 8 characters long")
	}
	if r.Role != nil && !user.Role(*r.Role).IsAdminTier() {
		errs.Add("role", "role must be admin or superadmin")
	}

	return errs.Err()
}

type AdminResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
	Position  string `json:"position"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
