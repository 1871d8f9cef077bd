package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// ListByEmployeeMonth returns every record of the employee dated in the month, ordered by date
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// GetByID retrieves a record, ErrAttendanceNotFound when missing
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Upsert inserts or replaces the record for (employee, date)
	Upsert(ctx context.Context, attendance Attendance) (Attendance, error)

	// Update writes status, times and correction fields of an existing record
	Update(ctx context.Context, attendance Attendance) (Attendance, error)
}
