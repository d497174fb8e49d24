package admin

import (
	"context"
	"testing"

	"github.com/hrconsole/hr-console-backend/internal/domain/admin"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/utils"
	"github.com/hrconsole/hr-console-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRequest(email string) admin.CreateAdminRequest {
	return admin.CreateAdminRequest{
		Name:     "Ayu",
		Email:    email,
		Phone:    "081234567890",
		Position: "HR Lead",
		Password: "password123",
	}
}

func setup(t *testing.T) (admin.AdminService, user.UserRepository, user.Principal) {
	t.Helper()
	users := memory.NewUserRepository()
	root, err := users.Create(context.Background(), user.User{Name: "Root", Email: "root@example.com", Role: user.RoleSuperAdmin})
	require.NoError(t, err)
	return NewAdminService(users), users, root.Principal()
}

func TestAdminService_Create(t *testing.T) {
	ctx := context.Background()
	svc, users, root := setup(t)

	created, err := svc.Create(ctx, root, newAdminRequest("ayu@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Role)

	stored, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "password123"))

	_, err = svc.Create(ctx, root, newAdminRequest("AYU@example.com"))
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	req := newAdminRequest("boss@example.com")
	req.Role = "superadmin"
	boss, err := svc.Create(ctx, root, req)
	require.NoError(t, err)
	assert.Equal(t, "superadmin", boss.Role)

	_, err = svc.Create(ctx, user.Principal{ID: created.ID, Role: user.RoleAdmin}, newAdminRequest("x@example.com"))
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestAdminService_Update(t *testing.T) {
	ctx := context.Background()
	svc, users, root := setup(t)

	created, err := svc.Create(ctx, root, newAdminRequest("ayu@example.com"))
	require.NoError(t, err)

	position := "Head of People"
	password := "new-password"
	updated, err := svc.Update(ctx, root, admin.UpdateAdminRequest{ID: created.ID, Position: &position, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, position, updated.Position)

	stored, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, password))

	employee, err := users.Create(ctx, user.User{Name: "E", Email: "e@example.com", Role: user.RoleUser})
	require.NoError(t, err)
	_, err = svc.Update(ctx, root, admin.UpdateAdminRequest{ID: employee.ID, Position: &position})
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestAdminService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, users, root := setup(t)

	a1, err := svc.Create(ctx, root, newAdminRequest("a1@example.com"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, root, newAdminRequest("a2@example.com"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, root, root.ID), admin.ErrCannotDeleteSelf)
	require.NoError(t, svc.Delete(ctx, root, a1.ID))
	assert.ErrorIs(t, svc.Delete(ctx, root, a1.ID), admin.ErrAdminNotFound)

	deleted, err := svc.DeleteAll(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := svc.List(ctx, root)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, root.ID, remaining[0].ID)

	_, err = users.GetByID(ctx, root.ID)
	assert.NoError(t, err)
}
