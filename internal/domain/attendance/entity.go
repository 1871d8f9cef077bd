package attendance

import (
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPresent, StatusAbsent:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar day.
type Attendance struct {
	ID                  string     `json:"id"`
	EmployeeID          string     `json:"employeeId"`
	Date                time.Time  `json:"date"`
	Status              Status     `json:"status"`
	EntryTime           *time.Time `json:"entryTime,omitempty"`
	ExitTime            *time.Time `json:"exitTime,omitempty"`
	WorkDurationMinutes *int       `json:"workDurationMinutes,omitempty"`
	IsCorrected         bool       `json:"isCorrected"`
	CorrectionReason    *string    `json:"correctionReason,omitempty"`
	CorrectedBy         *string    `json:"correctedBy,omitempty"`
	CorrectedAt         *time.Time `json:"correctedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// LastModified is UpdatedAt, falling back to CreatedAt
func (a Attendance) LastModified() time.Time {
	if !a.UpdatedAt.IsZero() {
		return a.UpdatedAt
	}
	return a.CreatedAt
}

// HasEntryAndExit reports whether both clock times are recorded
func (a Attendance) HasEntryAndExit() bool {
	return a.EntryTime != nil && a.ExitTime != nil
}

// WorkedMinutes prefers the stored duration and falls back to exit minus entry.
func (a Attendance) WorkedMinutes() (int, bool) {
	if a.WorkDurationMinutes != nil {
		return *a.WorkDurationMinutes, true
	}
	if !a.HasEntryAndExit() {
		return 0, false
	}
	return DurationMinutes(*a.EntryTime, *a.ExitTime), true
}

// DurationMinutes is the span from entry to exit. An exit before entry is
// read as the next day.
func DurationMinutes(entry, exit time.Time) int {
	d := exit.Sub(entry)
	if d < 0 {
		d += 24 * time.Hour
	}
	return int(d / time.Minute)
}
