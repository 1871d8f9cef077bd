package salary

import (
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/shift"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

// Calculator is the pure salary engine. It holds no state and is safe for
// concurrent use.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateEmployeeSalary computes one employee's pay for a month from the
// fully loaded attendance of that month. sh is nil when no shift is assigned.
func (c *Calculator) CalculateEmployeeSalary(
	emp employee.Employee,
	sh *shift.Shift,
	records []attendance.Attendance,
	month timeutil.Month,
) (salary.SalaryCalculation, error) {
	if month.IsZero() {
		return salary.SalaryCalculation{}, salary.NewDataError(emp.ID, "month is required")
	}

	tally, err := c.AggregateAttendance(emp.ID, month, records)
	if err != nil {
		return salary.SalaryCalculation{}, err
	}

	rates, err := c.ResolvePayRates(emp, sh, tally.DaysInMonth)
	if err != nil {
		return salary.SalaryCalculation{}, err
	}

	calc := salary.SalaryCalculation{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		DepartmentID:  emp.DepartmentID,
		Month:         month,
		MonthlySalary: emp.MonthlySalary,
		DaysInMonth:   tally.DaysInMonth,
		DaysPresent:   tally.Present,
		DaysAbsent:    tally.Absent,
		DaysPending:   tally.Pending,
		DailyRate:     rates.Daily,
		HourlyRate:    rates.Hourly,
	}

	base := rates.Daily * float64(tally.Present)
	calculated := base

	if sh != nil && sh.OvertimeAllowed && emp.OvertimeEligible {
		hours := c.OvertimeHours(tally, *sh)
		rate := rates.Overtime
		pay := hours * rate
		calculated += pay

		calc.BaseSalary = &base
		calc.OvertimeHours = &hours
		calc.OvertimeRate = &rate
		calc.OvertimePay = &pay
	}

	calc.CalculatedSalary = calculated
	calc.DeductionAmount = emp.MonthlySalary - calculated
	calc.AttendancePercentage = attendancePercentage(tally.Present, tally.DaysInMonth)

	return calc, nil
}

func attendancePercentage(present, days int) float64 {
	if days <= 0 {
		return 0
	}
	pct := float64(present) / float64(days) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
