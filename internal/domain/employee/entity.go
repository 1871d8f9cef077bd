package employee

import "time"

type Employee struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	DepartmentID       string     `json:"departmentId"`
	ShiftID            *string    `json:"shiftId,omitempty"`
	MonthlySalary      float64    `json:"monthlySalary"`
	HourlyRate         *float64   `json:"hourlyRate,omitempty"`
	OvertimeEligible   bool       `json:"overtimeEligible"`
	OvertimeMultiplier *float64   `json:"overtimeMultiplier,omitempty"`
	OvertimeRate       *float64   `json:"overtimeRate,omitempty"` // precomputed, overrides hourly * multiplier
	IsActive           bool       `json:"isActive"`
	JoiningDate        *time.Time `json:"joiningDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// HasShift reports whether a shift is assigned
func (e Employee) HasShift() bool {
	return e.ShiftID != nil && *e.ShiftID != ""
}
