package attendance

import (
	"errors"
	"time"

	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// REQUEST DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID          string         `json:"employeeId" validate:"required"`
	Date                timeutil.Date  `json:"date"`
	Status              string         `json:"status" validate:"required,oneof=pending present absent"`
	EntryTime           *timeutil.Time `json:"entryTime,omitempty"`
	ExitTime            *timeutil.Time `json:"exitTime,omitempty"`
	WorkDurationMinutes *int           `json:"workDurationMinutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
}

func (r *MarkAttendanceRequest) Validate() error {
	errs, err := structErrors(r)
	if err != nil {
		return err
	}

	if r.Date.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	if Status(r.Status) == StatusPresent && (r.EntryTime.Ptr() == nil || r.ExitTime.Ptr() == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "entryTime",
			Message: "entryTime and exitTime are required when status is present",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CorrectAttendanceRequest struct {
	ID                  string         `json:"-"`
	Status              string         `json:"status" validate:"required,oneof=pending present absent"`
	EntryTime           *timeutil.Time `json:"entryTime,omitempty"`
	ExitTime            *timeutil.Time `json:"exitTime,omitempty"`
	WorkDurationMinutes *int           `json:"workDurationMinutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
	Reason              string         `json:"reason" validate:"required,max=500"`
}

func (r *CorrectAttendanceRequest) Validate() error {
	errs, err := structErrors(r)
	if err != nil {
		return err
	}

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func structErrors(s interface{}) (validator.ValidationErrors, error) {
	err := validator.Struct(s)
	if err == nil {
		return nil, nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return errs, nil
	}
	return nil, err
}

// ========================================
// RESPONSE DTOs
// ========================================

type AttendanceResponse struct {
	ID                  string        `json:"id"`
	EmployeeID          string        `json:"employeeId"`
	Date                timeutil.Date `json:"date"`
	Status              Status        `json:"status"`
	EntryTime           *time.Time    `json:"entryTime"`
	ExitTime            *time.Time    `json:"exitTime"`
	WorkDurationMinutes *int          `json:"workDurationMinutes"`
	IsCorrected         bool          `json:"isCorrected"`
	CorrectionReason    *string       `json:"correctionReason,omitempty"`
	CorrectedBy         *string       `json:"correctedBy,omitempty"`
	CorrectedAt         *time.Time    `json:"correctedAt,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// MonthSummary counts one employee's days by status; the counts sum to DaysInMonth.
type MonthSummary struct {
	DaysInMonth int `json:"daysInMonth"`
	Present     int `json:"present"`
	Absent      int `json:"absent"`
	Pending     int `json:"pending"`
}

type MonthAttendanceResponse struct {
	EmployeeID string               `json:"employeeId"`
	Month      timeutil.Month       `json:"month"`
	Summary    MonthSummary         `json:"summary"`
	Records    []AttendanceResponse `json:"records"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                  a.ID,
		EmployeeID:          a.EmployeeID,
		Date:                timeutil.NewDate(a.Date),
		Status:              a.Status,
		EntryTime:           a.EntryTime,
		ExitTime:            a.ExitTime,
		WorkDurationMinutes: a.WorkDurationMinutes,
		IsCorrected:         a.IsCorrected,
		CorrectionReason:    a.CorrectionReason,
		CorrectedBy:         a.CorrectedBy,
		CorrectedAt:         a.CorrectedAt,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}
