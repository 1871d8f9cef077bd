package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	// ListActive returns active departments ordered by name
	ListActive(ctx context.Context) ([]Department, error)
}
