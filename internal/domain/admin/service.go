package admin

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

// AdminService manages admin-tier identities. Every operation is superadmin only.
type AdminService interface {
	Create(ctx context.Context, caller user.Principal, req CreateAdminRequest) (AdminResponse, error)
	List(ctx context.Context, caller user.Principal) ([]AdminResponse, error)
	Get(ctx context.Context, caller user.Principal, id string) (AdminResponse, error)
	Update(ctx context.Context, caller user.Principal, req UpdateAdminRequest) (AdminResponse, error)
	Delete(ctx context.Context, caller user.Principal, id string) error
	// DeleteAll removes every role admin identity. Superadmins are kept.
	DeleteAll(ctx context.Context, caller user.Principal) (int64, error)
}
