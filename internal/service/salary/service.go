package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/department"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/shift"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/report"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

type SalaryServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	attendanceRepo attendance.AttendanceRepository
	departmentRepo department.DepartmentRepository
	calculator     *Calculator
	renderer       *report.Renderer
	workers        int
	logger         *slog.Logger
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	departmentRepo department.DepartmentRepository,
	renderer *report.Renderer,
	workers int,
	logger *slog.Logger,
) salary.SalaryService {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SalaryServiceImpl{
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		departmentRepo: departmentRepo,
		calculator:     NewCalculator(),
		renderer:       renderer,
		workers:        workers,
		logger:         logger,
	}
}

// ========== EMPLOYEE ==========

func (s *SalaryServiceImpl) CalculateEmployeeSalary(ctx context.Context, employeeID string, month timeutil.Month) (salary.SalaryCalculation, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.SalaryCalculation{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := authorizeEmployee(ctx, emp); err != nil {
		return salary.SalaryCalculation{}, err
	}

	return s.calculate(ctx, emp, month)
}

func (s *SalaryServiceImpl) RenderPayslip(ctx context.Context, employeeID string, month timeutil.Month) ([]byte, error) {
	calc, err := s.CalculateEmployeeSalary(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, calc.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return s.renderer.Payslip(calc, dept.Name)
}

// calculate loads everything the engine needs before running it.
func (s *SalaryServiceImpl) calculate(ctx context.Context, emp employee.Employee, month timeutil.Month) (salary.SalaryCalculation, error) {
	var sh *shift.Shift
	if emp.HasShift() {
		got, err := s.shiftRepo.GetByID(ctx, *emp.ShiftID)
		switch {
		case err == nil:
			sh = &got
		case errors.Is(err, shift.ErrShiftNotFound):
			// Calculated as unassigned; overtime config rules decide the rest
			s.logger.WarnContext(ctx, "employee shift not found",
				slog.String("employee_id", emp.ID),
				slog.String("shift_id", *emp.ShiftID),
			)
		default:
			return salary.SalaryCalculation{}, fmt.Errorf("failed to get shift %s: %w", *emp.ShiftID, err)
		}
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, emp.ID, month.Year, month.Month)
	if err != nil {
		return salary.SalaryCalculation{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return s.calculator.CalculateEmployeeSalary(emp, sh, records, month)
}

// ========== DEPARTMENT ==========

func (s *SalaryServiceImpl) GetDepartmentReport(ctx context.Context, departmentID string, month timeutil.Month) (salary.DepartmentSalaryReport, error) {
	principal, ok := user.PrincipalFromContext(ctx)
	if !ok {
		return salary.DepartmentSalaryReport{}, user.ErrInsufficientPermissions
	}
	if !principal.Can(user.PermissionSalaryViewAll) &&
		!(principal.Can(user.PermissionSalaryViewDepartment) && principal.IsDepartmentHeadOf(departmentID)) {
		return salary.DepartmentSalaryReport{}, user.ErrInsufficientPermissions
	}

	dept, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return salary.DepartmentSalaryReport{}, fmt.Errorf("failed to get department: %w", err)
	}

	return s.departmentReport(ctx, dept, month)
}

// departmentReport computes every active employee of dept, at most s.workers at a time.
// Results keep the repository's listing order.
func (s *SalaryServiceImpl) departmentReport(ctx context.Context, dept department.Department, month timeutil.Month) (salary.DepartmentSalaryReport, error) {
	employees, err := s.employeeRepo.ListActiveByDepartment(ctx, dept.ID)
	if err != nil {
		return salary.DepartmentSalaryReport{}, fmt.Errorf("failed to list employees of department %s: %w", dept.ID, err)
	}

	calcs := make([]salary.SalaryCalculation, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, emp := range employees {
		g.Go(func() error {
			calc, err := s.calculate(gctx, emp, month)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			calcs[i] = calc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return salary.DepartmentSalaryReport{}, err
	}

	s.logger.DebugContext(ctx, "department salary report computed",
		slog.String("department_id", dept.ID),
		slog.String("month", month.String()),
		slog.Int("employees", len(calcs)),
	)

	return s.calculator.CalculateDepartmentReport(dept, month, calcs)
}

// ========== SYSTEM ==========

func (s *SalaryServiceImpl) GetSystemReport(ctx context.Context, month timeutil.Month) (salary.SystemSalaryReport, error) {
	if err := requirePermission(ctx, user.PermissionSalaryViewAll); err != nil {
		return salary.SystemSalaryReport{}, err
	}

	departments, err := s.departmentRepo.ListActive(ctx)
	if err != nil {
		return salary.SystemSalaryReport{}, fmt.Errorf("failed to list departments: %w", err)
	}

	reports := make([]salary.DepartmentSalaryReport, 0, len(departments))
	for _, dept := range departments {
		rpt, err := s.departmentReport(ctx, dept, month)
		if err != nil {
			return salary.SystemSalaryReport{}, err
		}
		reports = append(reports, rpt)
	}

	s.logger.DebugContext(ctx, "system salary report computed",
		slog.String("month", month.String()),
		slog.Int("departments", len(reports)),
	)

	return s.calculator.CalculateSystemReport(month, reports)
}

func (s *SalaryServiceImpl) ExportSystemReport(ctx context.Context, month timeutil.Month) ([]byte, error) {
	if err := requirePermission(ctx, user.PermissionSalaryExport); err != nil {
		return nil, err
	}

	rpt, err := s.GetSystemReport(ctx, month)
	if err != nil {
		return nil, err
	}

	return s.renderer.SystemWorkbook(rpt)
}

// ========== ACCESS ==========

func requirePermission(ctx context.Context, permission user.Permission) error {
	principal, ok := user.PrincipalFromContext(ctx)
	if !ok || !principal.Can(permission) {
		return user.ErrInsufficientPermissions
	}
	return nil
}

func authorizeEmployee(ctx context.Context, emp employee.Employee) error {
	principal, ok := user.PrincipalFromContext(ctx)
	if !ok {
		return user.ErrInsufficientPermissions
	}
	if !principal.CanAccessEmployee(emp.ID, emp.DepartmentID,
		user.PermissionSalaryViewOwn, user.PermissionSalaryViewDepartment, user.PermissionSalaryViewAll) {
		return user.ErrInsufficientPermissions
	}
	return nil
}
