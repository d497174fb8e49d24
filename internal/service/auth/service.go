package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrconsole/hr-console-backend/internal/domain/auth"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/jwt"
	"github.com/hrconsole/hr-console-backend/internal/pkg/utils"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := a.authenticate(ctx, req, user.Role.IsAdminTier)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	resp, err := a.issue(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	resp.Admin = identity(u)
	return resp, nil
}

// UserLogin implements auth.AuthService.
func (a *AuthServiceImpl) UserLogin(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := a.authenticate(ctx, req, func(r user.Role) bool { return r == user.RoleUser })
	if err != nil {
		return auth.LoginResponse{}, err
	}
	resp, err := a.issue(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	resp.User = identity(u)
	return resp, nil
}

// authenticate resolves the identity behind req. Unknown emails, wrong
// passwords and identities signing in through the wrong door all fail the same way.
func (a *AuthServiceImpl) authenticate(ctx context.Context, req auth.LoginRequest, allowed func(user.Role) bool) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	u, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		slog.Warn("Login failed", "user_id", u.ID)
		return user.User{}, auth.ErrInvalidCredentials
	}
	if !allowed(u.Role) {
		slog.Warn("Login through wrong portal", "user_id", u.ID, "role", u.Role)
		return user.User{}, auth.ErrInvalidCredentials
	}
	return u, nil
}

func (a *AuthServiceImpl) issue(u user.User) (auth.LoginResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      string(u.Role),
	}, nil
}

func identity(u user.User) *auth.Identity {
	return &auth.Identity{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Position: u.Position,
		Role:     string(u.Role),
	}
}
