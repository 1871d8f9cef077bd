package user

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleSuperAdmin     Role = "super_admin"     // System-wide access
	RoleDepartmentHead Role = "department_head" // Manages one department
	RoleEmployee       Role = "employee"        // Own records only
)

// roleAliases maps every accepted spelling to its canonical role.
var roleAliases = map[string]Role{
	"super_admin":     RoleSuperAdmin,
	"superadmin":      RoleSuperAdmin,
	"super-admin":     RoleSuperAdmin,
	"department_head": RoleDepartmentHead,
	"department-head": RoleDepartmentHead,
	"dept_head":       RoleDepartmentHead,
	"head":            RoleDepartmentHead,
	"employee":        RoleEmployee,
}

// ParseRole normalizes a role spelling. Unknown roles are rejected.
func ParseRole(s string) (Role, error) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

// Principal is the authenticated caller, built from access token claims.
type Principal struct {
	UserID       string
	EmployeeID   string
	DepartmentID string
	Role         Role
}

// IsSuperAdmin checks if the caller has system-wide access
func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// IsDepartmentHeadOf checks if the caller heads the given department
func (p Principal) IsDepartmentHeadOf(departmentID string) bool {
	return p.Role == RoleDepartmentHead && p.DepartmentID != "" && p.DepartmentID == departmentID
}

// Can checks the caller's role for a capability
func (p Principal) Can(permission Permission) bool {
	return HasPermission(p.Role, permission)
}

// CanAccessEmployee resolves the own/department/all capability triple for a
// record owned by employeeID in departmentID.
func (p Principal) CanAccessEmployee(employeeID, departmentID string, own, department, all Permission) bool {
	switch {
	case p.Can(all):
		return true
	case p.Can(department) && p.IsDepartmentHeadOf(departmentID):
		return true
	case p.Can(own) && p.EmployeeID != "" && p.EmployeeID == employeeID:
		return true
	}
	return false
}
