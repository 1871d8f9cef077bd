package salary

import (
	"math"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/shift"
)

type PayRates struct {
	Daily    float64
	Hourly   float64
	Overtime float64
}

// ResolvePayRates derives the daily, hourly and overtime rates of an employee.
// Division by zero yields a zero rate.
func (c *Calculator) ResolvePayRates(emp employee.Employee, sh *shift.Shift, daysInMonth int) (PayRates, error) {
	if emp.MonthlySalary < 0 || math.IsNaN(emp.MonthlySalary) || math.IsInf(emp.MonthlySalary, 0) {
		return PayRates{}, salary.NewDataError(emp.ID, "monthly salary %v is not a non-negative amount", emp.MonthlySalary)
	}
	if emp.HourlyRate != nil && *emp.HourlyRate < 0 {
		return PayRates{}, salary.NewDataError(emp.ID, "hourly rate %v is negative", *emp.HourlyRate)
	}

	var rates PayRates
	if daysInMonth > 0 {
		rates.Daily = emp.MonthlySalary / float64(daysInMonth)
	}

	switch {
	case emp.HourlyRate != nil:
		rates.Hourly = *emp.HourlyRate
	case sh != nil:
		if hours := sh.StandardHours(); hours > 0 {
			rates.Hourly = rates.Daily / hours
		}
	}

	multiplier, err := overtimeMultiplier(emp, sh)
	if err != nil {
		return PayRates{}, err
	}

	if emp.OvertimeRate != nil && *emp.OvertimeRate > 0 {
		rates.Overtime = *emp.OvertimeRate
	} else {
		rates.Overtime = rates.Hourly * multiplier
	}

	return rates, nil
}

// overtimeMultiplier prefers the employee's multiplier, then the shift's, then the default.
func overtimeMultiplier(emp employee.Employee, sh *shift.Shift) (float64, error) {
	if emp.OvertimeMultiplier != nil {
		if emp.OvertimeEligible && *emp.OvertimeMultiplier <= 1.0 {
			return 0, salary.NewConfigError(emp.ID, "overtime multiplier %v must be greater than 1.0", *emp.OvertimeMultiplier)
		}
		return *emp.OvertimeMultiplier, nil
	}

	if sh == nil {
		if emp.OvertimeEligible {
			return 0, salary.NewConfigError(emp.ID, "overtime eligible without a shift or an overtime multiplier")
		}
		return shift.DefaultOvertimeMultiplier, nil
	}

	if sh.OvertimeMultiplier != nil {
		return *sh.OvertimeMultiplier, nil
	}
	return shift.DefaultOvertimeMultiplier, nil
}

// OvertimeHours sums the minutes worked beyond the shift's standard day on
// every present day and returns them as hours.
func (c *Calculator) OvertimeHours(tally AttendanceTally, sh shift.Shift) float64 {
	standard := int(math.Round(sh.StandardHours() * 60))

	var extra int
	for _, rec := range tally.Days {
		if rec.Status != attendance.StatusPresent {
			continue
		}
		worked, ok := rec.WorkedMinutes()
		if !ok {
			continue
		}
		if worked > standard {
			extra += worked - standard
		}
	}

	return float64(extra) / 60
}
