package salary

import (
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

// ========================================
// EMPLOYEE
// ========================================

// SalaryCalculation is derived for one employee and one month. It is never persisted.
type SalaryCalculation struct {
	EmployeeID           string         `json:"employeeId"`
	EmployeeName         string         `json:"employeeName"`
	DepartmentID         string         `json:"departmentId"`
	Month                timeutil.Month `json:"month"`
	MonthlySalary        float64        `json:"monthlySalary"`
	DaysInMonth          int            `json:"daysInMonth"`
	DaysPresent          int            `json:"daysPresent"`
	DaysAbsent           int            `json:"daysAbsent"`
	DaysPending          int            `json:"daysPending"`
	DailyRate            float64        `json:"dailyRate"`
	HourlyRate           float64        `json:"hourlyRate"`
	CalculatedSalary     float64        `json:"calculatedSalary"`
	DeductionAmount      float64        `json:"deductionAmount"`
	AttendancePercentage float64        `json:"attendancePercentage"`

	// Set only when both the shift and the employee allow overtime
	BaseSalary    *float64 `json:"baseSalary,omitempty"`
	OvertimeHours *float64 `json:"overtimeHours,omitempty"`
	OvertimeRate  *float64 `json:"overtimeRate,omitempty"`
	OvertimePay   *float64 `json:"overtimePay,omitempty"`
}

func (c SalaryCalculation) HasOvertime() bool {
	return c.OvertimePay != nil
}

// OvertimeAmount returns the overtime pay, 0 when overtime does not apply.
func (c SalaryCalculation) OvertimeAmount() float64 {
	if c.OvertimePay == nil {
		return 0
	}
	return *c.OvertimePay
}

// ========================================
// DEPARTMENT
// ========================================

type DepartmentSalarySummary struct {
	TotalEmployees        int     `json:"totalEmployees"`
	TotalMonthlySalary    float64 `json:"totalMonthlySalary"`
	TotalCalculatedSalary float64 `json:"totalCalculatedSalary"`
	TotalDeduction        float64 `json:"totalDeduction"`
	TotalOvertimePay      float64 `json:"totalOvertimePay"`
	AverageDaysPresent    float64 `json:"averageDaysPresent"`
}

type DepartmentSalaryReport struct {
	DepartmentID   string                  `json:"departmentId"`
	DepartmentName string                  `json:"departmentName"`
	Month          timeutil.Month          `json:"month"`
	Employees      []SalaryCalculation     `json:"employees"`
	Summary        DepartmentSalarySummary `json:"summary"`
}

// ========================================
// SYSTEM
// ========================================

type SystemSalaryTotal struct {
	TotalDepartments      int     `json:"totalDepartments"`
	TotalEmployees        int     `json:"totalEmployees"`
	TotalMonthlySalary    float64 `json:"totalMonthlySalary"`
	TotalCalculatedSalary float64 `json:"totalCalculatedSalary"`
	TotalDeduction        float64 `json:"totalDeduction"`
	DeductionPercentage   float64 `json:"deductionPercentage"`
}

type SystemSalaryReport struct {
	Month       timeutil.Month           `json:"month"`
	Departments []DepartmentSalaryReport `json:"departments"`
	SystemTotal SystemSalaryTotal        `json:"systemTotal"`
}
