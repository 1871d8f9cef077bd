package salary

import (
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/department"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

// CalculateDepartmentReport folds employee calculations into department
// totals. Every calculation must belong to month.
func (c *Calculator) CalculateDepartmentReport(
	dept department.Department,
	month timeutil.Month,
	calcs []salary.SalaryCalculation,
) (salary.DepartmentSalaryReport, error) {
	employees := make([]salary.SalaryCalculation, 0, len(calcs))
	var summary salary.DepartmentSalarySummary
	var daysPresent int

	for _, calc := range calcs {
		if calc.Month != month {
			return salary.DepartmentSalaryReport{}, salary.NewDataError(calc.EmployeeID,
				"calculation for %s does not belong to department report for %s", calc.Month, month)
		}
		summary.TotalMonthlySalary += calc.MonthlySalary
		summary.TotalCalculatedSalary += calc.CalculatedSalary
		summary.TotalOvertimePay += calc.OvertimeAmount()
		daysPresent += calc.DaysPresent
		employees = append(employees, calc)
	}

	summary.TotalEmployees = len(employees)
	summary.TotalDeduction = summary.TotalMonthlySalary - summary.TotalCalculatedSalary
	if summary.TotalEmployees > 0 {
		summary.AverageDaysPresent = float64(daysPresent) / float64(summary.TotalEmployees)
	}

	return salary.DepartmentSalaryReport{
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
		Month:          month,
		Employees:      employees,
		Summary:        summary,
	}, nil
}

// CalculateSystemReport folds department reports into organization totals.
func (c *Calculator) CalculateSystemReport(
	month timeutil.Month,
	reports []salary.DepartmentSalaryReport,
) (salary.SystemSalaryReport, error) {
	departments := make([]salary.DepartmentSalaryReport, 0, len(reports))
	var total salary.SystemSalaryTotal

	for _, rpt := range reports {
		if rpt.Month != month {
			return salary.SystemSalaryReport{}, salary.NewDataError("",
				"department %s report for %s does not belong to system report for %s", rpt.DepartmentID, rpt.Month, month)
		}
		total.TotalEmployees += rpt.Summary.TotalEmployees
		total.TotalMonthlySalary += rpt.Summary.TotalMonthlySalary
		total.TotalCalculatedSalary += rpt.Summary.TotalCalculatedSalary
		departments = append(departments, rpt)
	}

	total.TotalDepartments = len(departments)
	total.TotalDeduction = total.TotalMonthlySalary - total.TotalCalculatedSalary
	if total.TotalMonthlySalary != 0 {
		total.DeductionPercentage = total.TotalDeduction / total.TotalMonthlySalary * 100
	}

	return salary.SystemSalaryReport{
		Month:       month,
		Departments: departments,
		SystemTotal: total,
	}, nil
}
