package team

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type TeamService interface {
	Create(ctx context.Context, caller user.Principal, req CreateTeamRequest) (TeamResponse, error)
	List(ctx context.Context, caller user.Principal) ([]TeamResponse, error)
	Get(ctx context.Context, caller user.Principal, id string) (TeamResponse, error)
	Update(ctx context.Context, caller user.Principal, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, caller user.Principal, id string) error
	DeleteAll(ctx context.Context, caller user.Principal) (int64, error)
	MyTeam(ctx context.Context, caller user.Principal) (TeamResponse, error)
}
