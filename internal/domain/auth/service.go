package auth

import "context"

type AuthService interface {
	// AdminLogin signs in admin and superadmin identities.
	AdminLogin(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// UserLogin signs in employees (role user).
	UserLogin(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
