package team

import (
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

type CreateTeamRequest struct {
	Name      string   `json:"team_name"`
	MemberIDs []string `json:"user_ids"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("team_name", r.Name)
	if len(r.Name) > 255 {
		errs.Add("team_name", "team_name must not exceed 255 characters")
	}
	for _, id := range r.MemberIDs {
		if validator.IsEmpty(id) {
			errs.Add("user_ids", "user_ids must not contain empty ids")
			break
		}
	}

	return errs.Err()
}

type UpdateTeamRequest struct {
	ID        string    `json:"-"`
	Name      *string   `json:"team_name,omitempty"`
	MemberIDs *[]string `json:"user_ids,omitempty"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("team_name", "team_name must not be empty")
	}
	if r.MemberIDs != nil {
		for _, id := range *r.MemberIDs {
			if validator.IsEmpty(id) {
				errs.Add("user_ids", "user_ids must not contain empty ids")
				break
			}
		}
	}

	return errs.Err()
}

type TeamResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"team_name"`
	MemberIDs []string     `json:"user_ids"`
	Members   []user.Owner `json:"members"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}
