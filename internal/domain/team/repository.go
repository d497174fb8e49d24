package team

import "context"

type TeamRepository interface {
	// Create and Update fail with ErrTeamNameExists when the name is taken.
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, error)
	// GetByMember returns the first team, by name, that lists userID.
	GetByMember(ctx context.Context, userID string) (Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, t Team) (Team, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
