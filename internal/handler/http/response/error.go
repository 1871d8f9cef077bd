package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/department"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/shift"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var dataErr *salary.DataError
	var configErr *salary.ConfigError

	switch {
	// Salary engine errors
	case errors.As(err, &dataErr):
		InvalidData(w, dataErr.Error())
	case errors.As(err, &configErr):
		Conflict(w, configErr.Error())

	// Access errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee state
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Default
	default:
		slog.Error("unhandled request error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
