package shift

import (
	"fmt"
	"time"

	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/validator"
)

// DefaultOvertimeMultiplier applies when neither employee nor shift sets one.
const DefaultOvertimeMultiplier = 1.5

const minutesPerDay = 24 * 60

type Shift struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	JobRole            string    `json:"jobRole"`
	DepartmentID       string    `json:"departmentId"`
	StartTime          string    `json:"startTime"` // HH:MM
	EndTime            string    `json:"endTime"`   // HH:MM, may be earlier than StartTime for overnight shifts
	WorkDurationHours  float64   `json:"workDurationHours"`
	OvertimeAllowed    bool      `json:"overtimeAllowed"`
	OvertimeMultiplier *float64  `json:"overtimeMultiplier,omitempty"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	if !validator.IsValidClockTime(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SpanMinutes is the start-to-end duration modulo 24h. Never negative.
func (s Shift) SpanMinutes() (int, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return 0, err
	}
	return ((end-start)%minutesPerDay + minutesPerDay) % minutesPerDay, nil
}

// IsOvernight reports whether the shift ends on the next calendar day.
func (s Shift) IsOvernight() bool {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	return end < start
}

// StandardHours is the configured work duration, falling back to the
// wall-clock span when no duration is stored.
func (s Shift) StandardHours() float64 {
	if s.WorkDurationHours > 0 {
		return s.WorkDurationHours
	}
	span, err := s.SpanMinutes()
	if err != nil {
		return 0
	}
	return float64(span) / 60
}
