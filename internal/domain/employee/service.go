package employee

import (
	"context"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

// EmployeeService manages role user persons and their HR profile.
type EmployeeService interface {
	Create(ctx context.Context, caller user.Principal, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, caller user.Principal) ([]EmployeeResponse, error)
	Get(ctx context.Context, caller user.Principal, id string) (EmployeeResponse, error)
	Update(ctx context.Context, caller user.Principal, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, caller user.Principal, id string) error
	DeleteAll(ctx context.Context, caller user.Principal) (int64, error)
}
