package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/admin"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/utils"
)

type AdminServiceImpl struct {
	user.UserRepository
}

func NewAdminService(userRepository user.UserRepository) admin.AdminService {
	return &AdminServiceImpl{UserRepository: userRepository}
}

// Create implements admin.AdminService.
func (s *AdminServiceImpl) Create(ctx context.Context, caller user.Principal, req admin.CreateAdminRequest) (admin.AdminResponse, error) {
	if err := caller.Authorize(user.PermissionAdminManage); err != nil {
		return admin.AdminResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return admin.AdminResponse{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         req.RoleOrDefault(),
		Phone:        req.Phone,
		Position:     req.Position,
	})
	if err != nil {
		return admin.AdminResponse{}, err
	}

	slog.Info("Admin created", "admin_id", created.ID, "role", created.Role, "by", caller.ID)
	return toResponse(created), nil
}

// List implements admin.AdminService.
func (s *AdminServiceImpl) List(ctx context.Context, caller user.Principal) ([]admin.AdminResponse, error) {
	if err := caller.Authorize(user.PermissionAdminManage); err != nil {
		return nil, err
	}

	admins, err := s.UserRepository.ListByRoles(ctx, user.RoleAdmin, user.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	responses := make([]admin.AdminResponse, len(admins))
	for i, a := range admins {
		responses[i] = toResponse(a)
	}
	return responses, nil
}

// Get implements admin.AdminService.
func (s *AdminServiceImpl) Get(ctx context.Context, caller user.Principal, id string) (admin.AdminResponse, error) {
	if err := caller.Authorize(user.PermissionAdminManage); err != nil {
		return admin.AdminResponse{}, err
	}

	a, err := s.get(ctx, id)
	if err != nil {
		return admin.AdminResponse{}, err
	}
	return toResponse(a), nil
}

// Update implements admin.AdminService.
func (s *AdminServiceImpl) Update(ctx context.Context, caller user.Principal, req admin.UpdateAdminRequest) (admin.AdminResponse, error) {
	if err := caller.Authorize(user.PermissionAdminManage); err != nil {
		return admin.AdminResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return admin.AdminResponse{}, err
	}

	existing, err := s.get(ctx, req.ID)
	if err != nil {
		return admin.AdminResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.Password != nil && *req.Password != "" {
		existing.PasswordHash, err = utils.HashPassword(*req.Password)
		if err != nil {
			return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		return admin.AdminResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements admin.AdminService.
func (s *AdminServiceImpl) Delete(ctx context.Context, caller user.Principal, id string) error {
	if err := caller.Authorize(user.PermissionAdminManage); err != nil {
		return err
	}
	if id == caller.ID {
		return admin.ErrCannotDeleteSelf
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Admin deleted", "admin_id", id, "by", caller.ID)
	return nil
}

// DeleteAll implements admin.AdminService.
func (s *AdminServiceImpl) DeleteAll(ctx context.Context, caller user.Principal) (int64, error) {
	if err := caller.Authorize(user.PermissionAdminManage); err != nil {
		return 0, err
	}

	deleted, err := s.UserRepository.DeleteByRole(ctx, user.RoleAdmin)
	if err != nil {
		return 0, fmt.Errorf("failed to delete admins: %w", err)
	}
	slog.Info("Admins deleted", "count", deleted, "by", caller.ID)
	return deleted, nil
}

// get resolves id to an admin-tier identity.
func (s *AdminServiceImpl) get(ctx context.Context, id string) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, admin.ErrAdminNotFound
		}
		return user.User{}, err
	}
	if !u.Role.IsAdminTier() {
		return user.User{}, admin.ErrAdminNotFound
	}
	return u, nil
}

func toResponse(u user.User) admin.AdminResponse {
	return admin.AdminResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Position:  u.Position,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
