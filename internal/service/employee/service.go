package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/employee"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/utils"
)

type EmployeeServiceImpl struct {
	user.UserRepository
}

func NewEmployeeService(userRepository user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{UserRepository: userRepository}
}

// Helper function to map a role user person to EmployeeResponse
func mapEmployeeToResponse(u user.User) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Position:  u.Position,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.Profile != nil {
		resp.EmployeeProfile = *u.Profile
	}
	return resp
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, caller user.Principal, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkReportTo(ctx, req.ReportTo, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         user.RoleUser,
		Phone:        req.Phone,
		Position:     req.Position,
		Profile:      req.EmployeeFields.Profile(),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "by", caller.ID)
	return mapEmployeeToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, caller user.Principal) ([]employee.EmployeeResponse, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return nil, err
	}

	employees, err := s.UserRepository.ListByRoles(ctx, user.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = mapEmployeeToResponse(e)
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, caller user.Principal, id string) (employee.EmployeeResponse, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.get(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(e), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, caller user.Principal, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.get(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkReportTo(ctx, req.ReportTo, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing.Name = req.Name
	existing.Email = strings.TrimSpace(req.Email)
	existing.Phone = req.Phone
	existing.Position = req.Position
	existing.Profile = req.EmployeeFields.Profile()
	if req.Password != "" {
		existing.PasswordHash, err = utils.HashPassword(req.Password)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, caller user.Principal, id string) error {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return err
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee deleted", "employee_id", id, "by", caller.ID)
	return nil
}

// DeleteAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteAll(ctx context.Context, caller user.Principal) (int64, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return 0, err
	}

	deleted, err := s.UserRepository.DeleteByRole(ctx, user.RoleUser)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employees: %w", err)
	}
	slog.Info("Employees deleted", "count", deleted, "by", caller.ID)
	return deleted, nil
}

func (s *EmployeeServiceImpl) get(ctx context.Context, id string) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, employee.ErrEmployeeNotFound
		}
		return user.User{}, err
	}
	if u.Role != user.RoleUser {
		return user.User{}, employee.ErrEmployeeNotFound
	}
	return u, nil
}

// checkReportTo makes sure a manager reference points at someone else who exists.
func (s *EmployeeServiceImpl) checkReportTo(ctx context.Context, reportTo, selfID string) error {
	if reportTo == "" {
		return nil
	}
	if reportTo == selfID {
		return employee.ErrReportToNotFound
	}
	if _, err := s.UserRepository.GetByID(ctx, reportTo); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.ErrReportToNotFound
		}
		return err
	}
	return nil
}
