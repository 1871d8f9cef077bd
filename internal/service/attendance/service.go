package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/database"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
	salaryengine "github.com/mannerishivardhan/workforce-backend-go/internal/service/salary"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calculator *salaryengine.Calculator
	logger     *slog.Logger
	now        func() time.Time
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		calculator:           salaryengine.NewCalculator(),
		logger:               logger,
		now:                  time.Now,
	}
}

// ListMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMonth(ctx context.Context, employeeID string, month timeutil.Month) (attendance.MonthAttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.MonthAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	principal, ok := user.PrincipalFromContext(ctx)
	if !ok || !principal.CanAccessEmployee(emp.ID, emp.DepartmentID,
		user.PermissionAttendanceViewOwn, user.PermissionAttendanceViewDepartment, user.PermissionAttendanceViewAll) {
		return attendance.MonthAttendanceResponse{}, user.ErrInsufficientPermissions
	}

	records, err := a.AttendanceRepository.ListByEmployeeMonth(ctx, emp.ID, month.Year, month.Month)
	if err != nil {
		return attendance.MonthAttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	summary := attendance.MonthSummary{DaysInMonth: month.Days()}
	tally, err := a.calculator.AggregateAttendance(emp.ID, month, records)
	switch {
	case err == nil:
		summary.Present, summary.Absent, summary.Pending = tally.Present, tally.Absent, tally.Pending
	case errors.Is(err, salary.ErrInvalidData):
		// Still list the records so they can be corrected
		a.logger.WarnContext(ctx, "attendance month cannot be summarized",
			slog.String("employee_id", emp.ID),
			slog.String("month", month.String()),
			slog.String("error", err.Error()),
		)
	default:
		return attendance.MonthAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewAttendanceResponse(rec))
	}

	return attendance.MonthAttendanceResponse{
		EmployeeID: emp.ID,
		Month:      month,
		Summary:    summary,
		Records:    responses,
	}, nil
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if err := authorizeManage(ctx, emp, user.PermissionAttendanceMark); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	att := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       timeutil.NewDate(req.Date.Time).Time,
		Status:     attendance.Status(req.Status),
		EntryTime:  req.EntryTime.Ptr(),
		ExitTime:   req.ExitTime.Ptr(),
	}
	att.WorkDurationMinutes = workDuration(req.WorkDurationMinutes, att.EntryTime, att.ExitTime)

	saved, err := a.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return attendance.NewAttendanceResponse(saved), nil
}

// Correct implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	principal, ok := user.PrincipalFromContext(ctx)
	if !ok || !principal.Can(user.PermissionAttendanceCorrect) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}

	var updated attendance.Attendance
	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		emp, err := a.EmployeeRepository.GetByID(ctx, att.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if err := authorizeManage(ctx, emp, user.PermissionAttendanceCorrect); err != nil {
			return err
		}

		att.Status = attendance.Status(req.Status)
		if t := req.EntryTime.Ptr(); t != nil {
			att.EntryTime = t
		}
		if t := req.ExitTime.Ptr(); t != nil {
			att.ExitTime = t
		}
		if req.WorkDurationMinutes != nil || req.EntryTime.Ptr() != nil || req.ExitTime.Ptr() != nil {
			att.WorkDurationMinutes = workDuration(req.WorkDurationMinutes, att.EntryTime, att.ExitTime)
		}

		correctedAt := a.now().UTC()
		reason := req.Reason
		correctedBy := principal.UserID
		att.IsCorrected = true
		att.CorrectionReason = &reason
		att.CorrectedBy = &correctedBy
		att.CorrectedAt = &correctedAt

		updated, err = a.AttendanceRepository.Update(ctx, att)
		if err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.logger.InfoContext(ctx, "attendance corrected",
		slog.String("attendance_id", updated.ID),
		slog.String("employee_id", updated.EmployeeID),
		slog.String("corrected_by", principal.UserID),
		slog.String("status", string(updated.Status)),
	)

	return attendance.NewAttendanceResponse(updated), nil
}

// workDuration keeps an explicit duration, otherwise derives it from entry and exit.
func workDuration(explicit *int, entry, exit *time.Time) *int {
	if explicit != nil {
		v := *explicit
		return &v
	}
	if entry == nil || exit == nil {
		return nil
	}
	minutes := attendance.DurationMinutes(*entry, *exit)
	return &minutes
}

// authorizeManage allows super admins everywhere and department heads inside their department.
func authorizeManage(ctx context.Context, emp employee.Employee, permission user.Permission) error {
	principal, ok := user.PrincipalFromContext(ctx)
	if !ok || !principal.Can(permission) {
		return user.ErrInsufficientPermissions
	}
	if principal.IsSuperAdmin() || principal.IsDepartmentHeadOf(emp.DepartmentID) {
		return nil
	}
	return user.ErrInsufficientPermissions
}
