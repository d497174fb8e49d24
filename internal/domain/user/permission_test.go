package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleUser, PermissionLeaveApply, true},
		{RoleUser, PermissionLeaveProcess, false},
		{RoleUser, PermissionHolidayManage, false},
		{RoleAdmin, PermissionLeaveProcess, true},
		{RoleAdmin, PermissionEmployeeManage, true},
		{RoleAdmin, PermissionLeaveDecide, false},
		{RoleAdmin, PermissionAdminManage, false},
		{RoleSuperAdmin, PermissionLeaveDecide, true},
		{RoleSuperAdmin, PermissionAdminManage, true},
		{RoleSuperAdmin, PermissionLeaveApply, true},
		{Role("owner"), PermissionLeaveApply, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestPrincipal_Authorize(t *testing.T) {
	assert.NoError(t, Principal{ID: "a", Role: RoleAdmin}.Authorize(PermissionLeaveProcess))
	assert.ErrorIs(t, Principal{ID: "u", Role: RoleUser}.Authorize(PermissionLeaveProcess), ErrForbidden)
	assert.ErrorIs(t, Principal{}.Authorize(PermissionLeaveApply), ErrForbidden)
}

func TestPrincipal_CanAccess(t *testing.T) {
	user := Principal{ID: "u1", Role: RoleUser}
	admin := Principal{ID: "a1", Role: RoleAdmin}
	super := Principal{ID: "s1", Role: RoleSuperAdmin}

	tests := []struct {
		name      string
		caller    Principal
		ownerID   string
		ownerRole Role
		want      bool
	}{
		{"user own", user, "u1", RoleUser, true},
		{"user other user", user, "u2", RoleUser, false},
		{"user admin record", user, "a1", RoleAdmin, false},
		{"admin own", admin, "a1", RoleAdmin, true},
		{"admin regular user", admin, "u1", RoleUser, true},
		{"admin other admin", admin, "a2", RoleAdmin, false},
		{"admin superadmin", admin, "s1", RoleSuperAdmin, false},
		{"superadmin other admin", super, "a1", RoleAdmin, true},
		{"superadmin user", super, "u1", RoleUser, true},
		{"unknown role", Principal{ID: "x", Role: "guest"}, "x", RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.caller.CanAccess(tt.ownerID, tt.ownerRole))
		})
	}
}

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("manager").IsValid())
	assert.True(t, RoleSuperAdmin.IsAdminTier())
	assert.False(t, RoleUser.IsAdminTier())
}
