package report

import (
	"fmt"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet   = "Summary"
	EmployeesSheet = "Employees"
)

var employeeHeader = []interface{}{
	"Department", "Employee ID", "Employee Name", "Monthly Salary", "Days In Month",
	"Days Present", "Days Absent", "Days Pending", "Daily Rate", "Overtime Hours",
	"Overtime Pay", "Calculated Salary", "Deduction", "Attendance %",
}

// SystemWorkbook renders the organization report as an XLSX workbook with a
// summary sheet and one row per employee.
func (r *Renderer) SystemWorkbook(rpt salary.SystemSalaryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(EmployeesSheet); err != nil {
		return nil, fmt.Errorf("failed to create employees sheet: %w", err)
	}

	total := rpt.SystemTotal
	summary := [][]interface{}{
		{"Month", rpt.Month.String()},
		{"Currency", r.currency},
		{"Departments", total.TotalDepartments},
		{"Employees", total.TotalEmployees},
		{"Total Monthly Salary", round2(total.TotalMonthlySalary)},
		{"Total Calculated Salary", round2(total.TotalCalculatedSalary)},
		{"Total Deduction", round2(total.TotalDeduction)},
		{"Deduction %", round2(total.DeductionPercentage)},
		{},
		{"Department", "Employees", "Monthly Salary", "Calculated Salary", "Deduction", "Overtime Pay", "Average Days Present"},
	}
	for _, dept := range rpt.Departments {
		s := dept.Summary
		summary = append(summary, []interface{}{
			dept.DepartmentName, s.TotalEmployees, round2(s.TotalMonthlySalary), round2(s.TotalCalculatedSalary),
			round2(s.TotalDeduction), round2(s.TotalOvertimePay), round2(s.AverageDaysPresent),
		})
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return nil, err
	}

	rows := [][]interface{}{employeeHeader}
	for _, dept := range rpt.Departments {
		for _, calc := range dept.Employees {
			var overtimeHours, overtimePay float64
			if calc.HasOvertime() {
				overtimeHours, overtimePay = *calc.OvertimeHours, *calc.OvertimePay
			}
			rows = append(rows, []interface{}{
				dept.DepartmentName, calc.EmployeeID, calc.EmployeeName, round2(calc.MonthlySalary), calc.DaysInMonth,
				calc.DaysPresent, calc.DaysAbsent, calc.DaysPending, round2(calc.DailyRate), round2(overtimeHours),
				round2(overtimePay), round2(calc.CalculatedSalary), round2(calc.DeductionAmount), round2(calc.AttendancePercentage),
			})
		}
	}
	if err := writeRows(f, EmployeesSheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
