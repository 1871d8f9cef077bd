package employee

import "context"

// EmployeeRepository is the read side consumed by salary and attendance services.
type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no row matches
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActiveByDepartment returns active employees ordered by name
	ListActiveByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
}
