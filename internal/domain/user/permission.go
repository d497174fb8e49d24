package user

type Permission string

const (
	// Leave
	PermissionLeaveApply   Permission = "leave.apply"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveProcess Permission = "leave.process"
	PermissionLeaveDecide  Permission = "leave.decide"

	// Attendance
	PermissionAttendanceRecord Permission = "attendance.record"
	PermissionAttendanceView   Permission = "attendance.view"

	// Shared calendars
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"
	PermissionEventView     Permission = "event.view"
	PermissionEventManage   Permission = "event.manage"
	PermissionCalendarView  Permission = "calendar.view"

	// Teams
	PermissionTeamViewOwn Permission = "team.view_own"
	PermissionTeamManage  Permission = "team.manage"

	// Identities
	PermissionEmployeeManage Permission = "employee.manage"
	PermissionAdminManage    Permission = "admin.manage"
)

var userPermissions = []Permission{
	PermissionLeaveApply,
	PermissionLeaveViewOwn,
	PermissionAttendanceRecord,
	PermissionAttendanceView,
	PermissionHolidayView,
	PermissionEventView,
	PermissionCalendarView,
	PermissionTeamViewOwn,
}

var adminPermissions = append(append([]Permission{}, userPermissions...),
	PermissionLeaveViewAll,
	PermissionLeaveProcess,
	PermissionHolidayManage,
	PermissionEventManage,
	PermissionTeamManage,
	PermissionEmployeeManage,
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleUser:  userPermissions,
	RoleAdmin: adminPermissions,
	RoleSuperAdmin: append(append([]Permission{}, adminPermissions...),
		PermissionLeaveDecide,
		PermissionAdminManage,
	),
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// Authorize returns ErrForbidden unless the caller's role grants permission.
func (p Principal) Authorize(permission Permission) error {
	if !HasPermission(p.Role, permission) {
		return ErrForbidden
	}
	return nil
}

// CanAccess decides whether the caller may see or act on a record owned by
// ownerID with role ownerRole. Superadmins see everything, admins see their
// own records and those of regular users, users see only their own.
func (p Principal) CanAccess(ownerID string, ownerRole Role) bool {
	switch p.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return ownerID == p.ID || ownerRole == RoleUser
	case RoleUser:
		return ownerID == p.ID
	}
	return false
}
