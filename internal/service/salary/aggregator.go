package salary

import (
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

// AttendanceTally counts one employee's days in one month. Present, Absent
// and Pending always sum to DaysInMonth.
type AttendanceTally struct {
	DaysInMonth int
	Present     int
	Absent      int
	Pending     int

	// Days holds the winning record for each recorded day of the month
	Days map[int]attendance.Attendance
}

// AggregateAttendance collapses records to one per day and counts them by
// status. Days without a record are pending. When a day has several records
// the most recently modified wins, and the later one in records wins a tie.
func (c *Calculator) AggregateAttendance(employeeID string, month timeutil.Month, records []attendance.Attendance) (AttendanceTally, error) {
	tally := AttendanceTally{
		DaysInMonth: month.Days(),
		Days:        make(map[int]attendance.Attendance, len(records)),
	}

	for _, rec := range records {
		if err := checkRecord(employeeID, month, rec); err != nil {
			return AttendanceTally{}, err
		}

		day := rec.Date.Day()
		if current, ok := tally.Days[day]; ok && rec.LastModified().Before(current.LastModified()) {
			continue
		}
		tally.Days[day] = rec
	}

	for _, rec := range tally.Days {
		switch rec.Status {
		case attendance.StatusPresent:
			tally.Present++
		case attendance.StatusAbsent:
			tally.Absent++
		}
	}
	tally.Pending = tally.DaysInMonth - tally.Present - tally.Absent

	return tally, nil
}

func checkRecord(employeeID string, month timeutil.Month, rec attendance.Attendance) error {
	switch {
	case rec.EmployeeID != employeeID:
		return salary.NewDataError(employeeID, "attendance %s belongs to employee %s", rec.ID, rec.EmployeeID)
	case !month.Contains(rec.Date):
		return salary.NewDataError(employeeID, "attendance %s dated %s is outside %s", rec.ID, rec.Date.Format(timeutil.DateLayout), month)
	case !rec.Status.IsValid():
		return salary.NewDataError(employeeID, "attendance %s has unknown status %q", rec.ID, rec.Status)
	case rec.Status == attendance.StatusPresent && !rec.HasEntryAndExit() && !rec.IsCorrected:
		return salary.NewDataError(employeeID, "attendance %s is present without entry and exit times", rec.ID)
	}
	return nil
}
