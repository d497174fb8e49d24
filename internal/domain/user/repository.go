package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ListByIDs returns the users found among ids; unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []string) ([]User, error)
	ListByRoles(ctx context.Context, roles ...Role) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id string) error
	DeleteByRole(ctx context.Context, role Role) (int64, error)
}
