package user

type Permission string

const (
	// Salary
	PermissionSalaryViewOwn        Permission = "salary.view_own"
	PermissionSalaryViewDepartment Permission = "salary.view_department"
	PermissionSalaryViewAll        Permission = "salary.view_all"
	PermissionSalaryExport         Permission = "salary.export"

	// Attendance Management
	PermissionAttendanceViewOwn        Permission = "attendance.view_own"
	PermissionAttendanceViewDepartment Permission = "attendance.view_department"
	PermissionAttendanceViewAll        Permission = "attendance.view_all"
	PermissionAttendanceMark           Permission = "attendance.mark"
	PermissionAttendanceCorrect        Permission = "attendance.correct"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionSalaryViewOwn,
		PermissionSalaryViewDepartment,
		PermissionSalaryViewAll,
		PermissionSalaryExport,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewDepartment,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionAttendanceCorrect,
	},
	RoleDepartmentHead: {
		// Scoped to the head's own department by Principal.CanAccessEmployee
		PermissionSalaryViewOwn,
		PermissionSalaryViewDepartment,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewDepartment,
		PermissionAttendanceMark,
		PermissionAttendanceCorrect,
	},
	RoleEmployee: {
		PermissionSalaryViewOwn,
		PermissionAttendanceViewOwn,
	},
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
