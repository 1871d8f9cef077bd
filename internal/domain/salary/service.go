package salary

import (
	"context"

	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

type SalaryService interface {
	// Employee
	CalculateEmployeeSalary(ctx context.Context, employeeID string, month timeutil.Month) (SalaryCalculation, error)
	RenderPayslip(ctx context.Context, employeeID string, month timeutil.Month) ([]byte, error)

	// Department
	GetDepartmentReport(ctx context.Context, departmentID string, month timeutil.Month) (DepartmentSalaryReport, error)

	// System
	GetSystemReport(ctx context.Context, month timeutil.Month) (SystemSalaryReport, error)
	ExportSystemReport(ctx context.Context, month timeutil.Month) ([]byte, error)
}
