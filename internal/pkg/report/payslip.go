package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
)

// Payslip renders one employee's monthly calculation as an A4 PDF.
func (r *Renderer) Payslip(calc salary.SalaryCalculation, departmentName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %s", calc.EmployeeID, calc.Month), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", calc.EmployeeName, calc.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", departmentName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", calc.Month.Start().Format("2006-01-02"), calc.Month.End().AddDate(0, 0, -1).Format("2006-01-02")))
	pdf.Ln(12)

	row := func(label, value string) {
		pdf.CellFormat(90, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, value, "1", 1, "R", false, 0, "")
	}
	amount := func(v float64) string {
		return fmt.Sprintf("%s %s", money(v), r.currency)
	}

	pdf.SetFont("Helvetica", "B", 12)
	row("Attendance", "")
	pdf.SetFont("Helvetica", "", 12)
	row("Days in month", fmt.Sprintf("%d", calc.DaysInMonth))
	row("Days present", fmt.Sprintf("%d", calc.DaysPresent))
	row("Days absent", fmt.Sprintf("%d", calc.DaysAbsent))
	row("Days pending", fmt.Sprintf("%d", calc.DaysPending))
	row("Attendance", fmt.Sprintf("%s%%", money(calc.AttendancePercentage)))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	row("Earnings", "")
	pdf.SetFont("Helvetica", "", 12)
	row("Monthly salary", amount(calc.MonthlySalary))
	row("Daily rate", amount(calc.DailyRate))
	if calc.HasOvertime() {
		row("Base pay", amount(*calc.BaseSalary))
		row("Overtime hours", money(*calc.OvertimeHours))
		row("Overtime rate", amount(*calc.OvertimeRate))
		row("Overtime pay", amount(*calc.OvertimePay))
	}
	row("Deductions", amount(calc.DeductionAmount))

	pdf.SetFont("Helvetica", "B", 12)
	row("Net pay", amount(calc.CalculatedSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
