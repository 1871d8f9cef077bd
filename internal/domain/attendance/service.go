package attendance

import (
	"context"

	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

type AttendanceService interface {
	// ListMonth returns an employee's records and day counts for one month
	ListMonth(ctx context.Context, employeeID string, month timeutil.Month) (MonthAttendanceResponse, error)

	// Mark records the status of one day, replacing any existing record for that day
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// Correct amends a record and flags it as corrected
	Correct(ctx context.Context, req CorrectAttendanceRequest) (AttendanceResponse, error)
}
