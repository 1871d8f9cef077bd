package salary

import (
	"errors"
	"testing"
	"time"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/department"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/shift"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var april = timeutil.NewMonth(2024, time.April)

func ptr[T any](v T) *T {
	return &v
}

func day(m timeutil.Month, d int) time.Time {
	return time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.UTC)
}

func present(employeeID string, m timeutil.Month, d int, workedMinutes int) attendance.Attendance {
	entry := day(m, d).Add(9 * time.Hour)
	exit := entry.Add(time.Duration(workedMinutes) * time.Minute)
	return attendance.Attendance{
		ID:         employeeID + "-" + day(m, d).Format("0102"),
		EmployeeID: employeeID,
		Date:       day(m, d),
		Status:     attendance.StatusPresent,
		EntryTime:  &entry,
		ExitTime:   &exit,
		CreatedAt:  day(m, d),
	}
}

func absent(employeeID string, m timeutil.Month, d int) attendance.Attendance {
	return attendance.Attendance{
		ID:         employeeID + "-" + day(m, d).Format("0102"),
		EmployeeID: employeeID,
		Date:       day(m, d),
		Status:     attendance.StatusAbsent,
		CreatedAt:  day(m, d),
	}
}

// month of records: the first presentDays days present, the next absentDays absent
func records(employeeID string, m timeutil.Month, presentDays, absentDays int) []attendance.Attendance {
	var out []attendance.Attendance
	for d := 1; d <= presentDays; d++ {
		out = append(out, present(employeeID, m, d, 480))
	}
	for d := presentDays + 1; d <= presentDays+absentDays; d++ {
		out = append(out, absent(employeeID, m, d))
	}
	return out
}

func dayShift() *shift.Shift {
	return &shift.Shift{
		ID:                "s1",
		Name:              "Day",
		StartTime:         "09:00",
		EndTime:           "17:00",
		WorkDurationHours: 8,
		OvertimeAllowed:   true,
	}
}

func TestCalculateEmployeeSalary_ThirtyDayMonth(t *testing.T) {
	calc := NewCalculator()
	emp := employee.Employee{ID: "e1", Name: "Asha", DepartmentID: "d1", MonthlySalary: 30000}

	got, err := calc.CalculateEmployeeSalary(emp, nil, records("e1", april, 28, 2), april)
	require.NoError(t, err)

	assert.Equal(t, 30, got.DaysInMonth)
	assert.Equal(t, 28, got.DaysPresent)
	assert.Equal(t, 2, got.DaysAbsent)
	assert.Equal(t, 0, got.DaysPending)
	assert.InDelta(t, 1000, got.DailyRate, 1e-9)
	assert.InDelta(t, 28000, got.CalculatedSalary, 1e-9)
	assert.InDelta(t, 2000, got.DeductionAmount, 1e-9)
	assert.InDelta(t, 93.33, got.AttendancePercentage, 0.01)
	assert.False(t, got.HasOvertime())
	assert.Nil(t, got.OvertimePay)
	assert.Equal(t, "Asha", got.EmployeeName)
	assert.Equal(t, april, got.Month)
}

func TestCalculateEmployeeSalary_ZeroSalary(t *testing.T) {
	got, err := NewCalculator().CalculateEmployeeSalary(
		employee.Employee{ID: "e1"}, nil, records("e1", april, 10, 0), april)
	require.NoError(t, err)

	assert.Zero(t, got.DailyRate)
	assert.Zero(t, got.CalculatedSalary)
	assert.Zero(t, got.DeductionAmount)
	assert.InDelta(t, 33.33, got.AttendancePercentage, 0.01)
}

func TestCalculateEmployeeSalary_MissingDaysArePending(t *testing.T) {
	feb := timeutil.NewMonth(2024, time.February)
	got, err := NewCalculator().CalculateEmployeeSalary(
		employee.Employee{ID: "e1", MonthlySalary: 29000}, nil, records("e1", feb, 5, 3), feb)
	require.NoError(t, err)

	assert.Equal(t, 29, got.DaysInMonth)
	assert.Equal(t, 5, got.DaysPresent)
	assert.Equal(t, 3, got.DaysAbsent)
	assert.Equal(t, 21, got.DaysPending)
	assert.Equal(t, got.DaysInMonth, got.DaysPresent+got.DaysAbsent+got.DaysPending)
	assert.InDelta(t, 5000, got.CalculatedSalary, 1e-9)
}

func TestCalculateEmployeeSalary_Overtime(t *testing.T) {
	emp := employee.Employee{
		ID:               "e1",
		MonthlySalary:    30000,
		HourlyRate:       ptr(125.0),
		OvertimeEligible: true,
	}
	recs := []attendance.Attendance{
		present("e1", april, 1, 600),
		present("e1", april, 2, 600),
		present("e1", april, 3, 420),
	}

	got, err := NewCalculator().CalculateEmployeeSalary(emp, dayShift(), recs, april)
	require.NoError(t, err)
	require.True(t, got.HasOvertime())

	assert.InDelta(t, 4, *got.OvertimeHours, 1e-9)
	assert.InDelta(t, 187.5, *got.OvertimeRate, 1e-9)
	assert.InDelta(t, 750, *got.OvertimePay, 1e-9)
	assert.InDelta(t, 3000, *got.BaseSalary, 1e-9)
	assert.InDelta(t, 3750, got.CalculatedSalary, 1e-9)
	assert.InDelta(t, 26250, got.DeductionAmount, 1e-9)
}

func TestCalculateEmployeeSalary_OvertimeNeedsShiftAndEmployee(t *testing.T) {
	recs := []attendance.Attendance{present("e1", april, 1, 600)}

	notEligible := employee.Employee{ID: "e1", MonthlySalary: 30000}
	got, err := NewCalculator().CalculateEmployeeSalary(notEligible, dayShift(), recs, april)
	require.NoError(t, err)
	assert.False(t, got.HasOvertime())
	assert.InDelta(t, 1000, got.CalculatedSalary, 1e-9)

	closed := dayShift()
	closed.OvertimeAllowed = false
	eligible := employee.Employee{ID: "e1", MonthlySalary: 30000, OvertimeEligible: true}
	got, err = NewCalculator().CalculateEmployeeSalary(eligible, closed, recs, april)
	require.NoError(t, err)
	assert.False(t, got.HasOvertime())
}

func TestCalculateEmployeeSalary_OvernightShiftOvertime(t *testing.T) {
	night := &shift.Shift{ID: "s2", StartTime: "22:00", EndTime: "06:00", OvertimeAllowed: true}
	emp := employee.Employee{ID: "e1", MonthlySalary: 24000, OvertimeEligible: true}

	entry := day(april, 5).Add(22 * time.Hour)
	exit := entry.Add(9 * time.Hour)
	rec := attendance.Attendance{
		ID: "n1", EmployeeID: "e1", Date: day(april, 5), Status: attendance.StatusPresent,
		EntryTime: &entry, ExitTime: &exit,
	}

	got, err := NewCalculator().CalculateEmployeeSalary(emp, night, []attendance.Attendance{rec}, april)
	require.NoError(t, err)

	// 24000/30 = 800 a day, 100 an hour over an 8h night, 1.5x for one extra hour
	assert.InDelta(t, 100, got.HourlyRate, 1e-9)
	assert.InDelta(t, 1, *got.OvertimeHours, 1e-9)
	assert.InDelta(t, 150, *got.OvertimePay, 1e-9)
	assert.InDelta(t, 950, got.CalculatedSalary, 1e-9)
}

func TestCalculateEmployeeSalary_Idempotent(t *testing.T) {
	calc := NewCalculator()
	emp := employee.Employee{ID: "e1", MonthlySalary: 45000, OvertimeEligible: true}
	recs := append(records("e1", april, 20, 5), present("e1", april, 26, 540))

	first, err := calc.CalculateEmployeeSalary(emp, dayShift(), recs, april)
	require.NoError(t, err)
	second, err := calc.CalculateEmployeeSalary(emp, dayShift(), recs, april)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateEmployeeSalary_NonNegativeWithoutOvertime(t *testing.T) {
	calc := NewCalculator()
	for presentDays := 0; presentDays <= 30; presentDays += 5 {
		got, err := calc.CalculateEmployeeSalary(
			employee.Employee{ID: "e1", MonthlySalary: 31000}, nil, records("e1", april, presentDays, 30-presentDays), april)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.CalculatedSalary, 0.0)
		assert.LessOrEqual(t, got.CalculatedSalary, got.MonthlySalary+1e-9)
		assert.GreaterOrEqual(t, got.AttendancePercentage, 0.0)
		assert.LessOrEqual(t, got.AttendancePercentage, 100.0)
	}
}

func TestCalculateEmployeeSalary_ZeroMonthIsRejected(t *testing.T) {
	_, err := NewCalculator().CalculateEmployeeSalary(employee.Employee{ID: "e1"}, nil, nil, timeutil.Month{})
	assert.ErrorIs(t, err, salary.ErrInvalidData)
}

func TestAggregateAttendance_DuplicateTieBreak(t *testing.T) {
	calc := NewCalculator()
	older := absent("e1", april, 3)
	older.UpdatedAt = day(april, 3).Add(time.Hour)
	newer := present("e1", april, 3, 480)
	newer.UpdatedAt = day(april, 3).Add(2 * time.Hour)

	tally, err := calc.AggregateAttendance("e1", april, []attendance.Attendance{newer, older})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Present)
	assert.Equal(t, 0, tally.Absent)
	assert.Equal(t, 29, tally.Pending)

	// identical timestamps: the later record in the input wins
	a := absent("e1", april, 4)
	b := present("e1", april, 4, 480)
	b.CreatedAt = a.CreatedAt
	tally, err = calc.AggregateAttendance("e1", april, []attendance.Attendance{a, b})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Present)
	assert.Equal(t, attendance.StatusPresent, tally.Days[4].Status)

	tally, err = calc.AggregateAttendance("e1", april, []attendance.Attendance{b, a})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Absent)
}

func TestAggregateAttendance_CorrectedPresentWithoutTimes(t *testing.T) {
	rec := attendance.Attendance{
		ID: "a1", EmployeeID: "e1", Date: day(april, 9), Status: attendance.StatusPresent,
		IsCorrected: true, CorrectionReason: ptr("manual register"),
	}
	tally, err := NewCalculator().AggregateAttendance("e1", april, []attendance.Attendance{rec})
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Present)
}

func TestAggregateAttendance_RejectsBadRecords(t *testing.T) {
	noTimes := present("e1", april, 2, 480)
	noTimes.ExitTime = nil

	unknown := absent("e1", april, 2)
	unknown.Status = attendance.Status("late")

	tests := []struct {
		name string
		rec  attendance.Attendance
	}{
		{"outside month", absent("e1", timeutil.NewMonth(2024, time.May), 1)},
		{"other employee", absent("e2", april, 1)},
		{"unknown status", unknown},
		{"present without times", noTimes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCalculator().AggregateAttendance("e1", april, []attendance.Attendance{tt.rec})
			require.Error(t, err)
			assert.ErrorIs(t, err, salary.ErrInvalidData)

			var dataErr *salary.DataError
			require.True(t, errors.As(err, &dataErr))
			assert.Equal(t, "e1", dataErr.EmployeeID)
		})
	}
}

func TestResolvePayRates(t *testing.T) {
	calc := NewCalculator()

	t.Run("hourly from shift", func(t *testing.T) {
		rates, err := calc.ResolvePayRates(employee.Employee{ID: "e1", MonthlySalary: 30000}, dayShift(), 30)
		require.NoError(t, err)
		assert.InDelta(t, 1000, rates.Daily, 1e-9)
		assert.InDelta(t, 125, rates.Hourly, 1e-9)
		assert.InDelta(t, 187.5, rates.Overtime, 1e-9)
	})

	t.Run("no shift leaves hourly at zero", func(t *testing.T) {
		rates, err := calc.ResolvePayRates(employee.Employee{ID: "e1", MonthlySalary: 30000}, nil, 30)
		require.NoError(t, err)
		assert.Zero(t, rates.Hourly)
		assert.Zero(t, rates.Overtime)
	})

	t.Run("zero days", func(t *testing.T) {
		rates, err := calc.ResolvePayRates(employee.Employee{ID: "e1", MonthlySalary: 30000}, dayShift(), 0)
		require.NoError(t, err)
		assert.Zero(t, rates.Daily)
		assert.Zero(t, rates.Hourly)
	})

	t.Run("employee multiplier beats shift", func(t *testing.T) {
		sh := dayShift()
		sh.OvertimeMultiplier = ptr(1.25)
		emp := employee.Employee{ID: "e1", HourlyRate: ptr(100.0), OvertimeEligible: true, OvertimeMultiplier: ptr(2.0)}
		rates, err := calc.ResolvePayRates(emp, sh, 30)
		require.NoError(t, err)
		assert.InDelta(t, 200, rates.Overtime, 1e-9)

		emp.OvertimeMultiplier = nil
		rates, err = calc.ResolvePayRates(emp, sh, 30)
		require.NoError(t, err)
		assert.InDelta(t, 125, rates.Overtime, 1e-9)
	})

	t.Run("precomputed overtime rate", func(t *testing.T) {
		emp := employee.Employee{ID: "e1", HourlyRate: ptr(100.0), OvertimeEligible: true, OvertimeRate: ptr(175.0)}
		rates, err := calc.ResolvePayRates(emp, dayShift(), 30)
		require.NoError(t, err)
		assert.InDelta(t, 175, rates.Overtime, 1e-9)
	})

	t.Run("negative salary", func(t *testing.T) {
		_, err := calc.ResolvePayRates(employee.Employee{ID: "e1", MonthlySalary: -1}, nil, 30)
		assert.ErrorIs(t, err, salary.ErrInvalidData)
	})

	t.Run("eligible without shift or multiplier", func(t *testing.T) {
		_, err := calc.ResolvePayRates(employee.Employee{ID: "e1", MonthlySalary: 1000, OvertimeEligible: true}, nil, 30)
		assert.ErrorIs(t, err, salary.ErrMissingConfig)
		var cfgErr *salary.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("multiplier not above one", func(t *testing.T) {
		emp := employee.Employee{ID: "e1", MonthlySalary: 1000, OvertimeEligible: true, OvertimeMultiplier: ptr(1.0)}
		_, err := calc.ResolvePayRates(emp, dayShift(), 30)
		assert.ErrorIs(t, err, salary.ErrMissingConfig)
	})

	t.Run("eligible with employee multiplier only", func(t *testing.T) {
		emp := employee.Employee{ID: "e1", HourlyRate: ptr(80.0), OvertimeEligible: true, OvertimeMultiplier: ptr(1.5)}
		rates, err := calc.ResolvePayRates(emp, nil, 30)
		require.NoError(t, err)
		assert.InDelta(t, 120, rates.Overtime, 1e-9)
	})
}

func TestCalculateDepartmentReport(t *testing.T) {
	calc := NewCalculator()
	dept := department.Department{ID: "d1", Name: "Engineering"}

	a, err := calc.CalculateEmployeeSalary(
		employee.Employee{ID: "e1", DepartmentID: "d1", MonthlySalary: 30000}, nil, records("e1", april, 28, 2), april)
	require.NoError(t, err)
	b, err := calc.CalculateEmployeeSalary(
		employee.Employee{ID: "e2", DepartmentID: "d1", MonthlySalary: 30000}, nil, records("e2", april, 15, 15), april)
	require.NoError(t, err)

	rpt, err := calc.CalculateDepartmentReport(dept, april, []salary.SalaryCalculation{a, b})
	require.NoError(t, err)

	assert.Equal(t, "Engineering", rpt.DepartmentName)
	assert.Equal(t, 2, rpt.Summary.TotalEmployees)
	assert.InDelta(t, 60000, rpt.Summary.TotalMonthlySalary, 1e-9)
	assert.InDelta(t, 43000, rpt.Summary.TotalCalculatedSalary, 1e-9)
	assert.InDelta(t, 17000, rpt.Summary.TotalDeduction, 1e-9)
	assert.InDelta(t, 21.5, rpt.Summary.AverageDaysPresent, 1e-9)
	assert.Zero(t, rpt.Summary.TotalOvertimePay)
	assert.Equal(t, []string{"e1", "e2"}, []string{rpt.Employees[0].EmployeeID, rpt.Employees[1].EmployeeID})
}

func TestCalculateDepartmentReport_Empty(t *testing.T) {
	rpt, err := NewCalculator().CalculateDepartmentReport(department.Department{ID: "d1"}, april, nil)
	require.NoError(t, err)
	assert.NotNil(t, rpt.Employees)
	assert.Zero(t, rpt.Summary.TotalEmployees)
	assert.Zero(t, rpt.Summary.AverageDaysPresent)
}

func TestCalculateDepartmentReport_RejectsOtherMonth(t *testing.T) {
	stray := salary.SalaryCalculation{EmployeeID: "e1", Month: timeutil.NewMonth(2024, time.March)}
	_, err := NewCalculator().CalculateDepartmentReport(department.Department{ID: "d1"}, april, []salary.SalaryCalculation{stray})
	assert.ErrorIs(t, err, salary.ErrInvalidData)
}

func TestCalculateSystemReport(t *testing.T) {
	calc := NewCalculator()
	engineering := salary.DepartmentSalaryReport{
		DepartmentID: "d1", Month: april,
		Summary: salary.DepartmentSalarySummary{TotalEmployees: 2, TotalMonthlySalary: 60000, TotalCalculatedSalary: 43000},
	}
	sales := salary.DepartmentSalaryReport{
		DepartmentID: "d2", Month: april,
		Summary: salary.DepartmentSalarySummary{TotalEmployees: 1, TotalMonthlySalary: 40000, TotalCalculatedSalary: 40000},
	}

	rpt, err := calc.CalculateSystemReport(april, []salary.DepartmentSalaryReport{engineering, sales})
	require.NoError(t, err)

	total := rpt.SystemTotal
	assert.Equal(t, 2, total.TotalDepartments)
	assert.Equal(t, 3, total.TotalEmployees)
	assert.InDelta(t, 100000, total.TotalMonthlySalary, 1e-9)
	assert.InDelta(t, 83000, total.TotalCalculatedSalary, 1e-9)
	assert.InDelta(t, 17000, total.TotalDeduction, 1e-9)
	assert.InDelta(t, 17, total.DeductionPercentage, 1e-9)
	assert.InDelta(t, total.TotalMonthlySalary-total.TotalCalculatedSalary, total.TotalDeduction, 1e-9)
}

func TestCalculateSystemReport_ZeroPayroll(t *testing.T) {
	rpt, err := NewCalculator().CalculateSystemReport(april, nil)
	require.NoError(t, err)
	assert.Zero(t, rpt.SystemTotal.DeductionPercentage)
	assert.NotNil(t, rpt.Departments)

	_, err = NewCalculator().CalculateSystemReport(april, []salary.DepartmentSalaryReport{{DepartmentID: "d1"}})
	assert.ErrorIs(t, err, salary.ErrInvalidData)
}
