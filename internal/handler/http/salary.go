package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/handler/http/response"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type SalaryHandler interface {
	GetEmployeeSalary(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetDepartmentReport(w http.ResponseWriter, r *http.Request)
	GetSystemReport(w http.ResponseWriter, r *http.Request)
	ExportSystemReport(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
	now           func() time.Time
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
		now:           time.Now,
	}
}

// GetEmployeeSalary implements SalaryHandler.
func (h *salaryHandlerImpl) GetEmployeeSalary(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r, h.now)
	if !ok {
		return
	}

	calc, err := h.salaryService.CalculateEmployeeSalary(r.Context(), chi.URLParam(r, "employeeId"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calc)
}

// GetPayslip implements SalaryHandler.
func (h *salaryHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r, h.now)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	pdf, err := h.salaryService.RenderPayslip(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, contentTypePDF, fmt.Sprintf("payslip-%s-%s.pdf", employeeID, month), pdf)
}

// GetDepartmentReport implements SalaryHandler.
func (h *salaryHandlerImpl) GetDepartmentReport(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r, h.now)
	if !ok {
		return
	}

	report, err := h.salaryService.GetDepartmentReport(r.Context(), chi.URLParam(r, "departmentId"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// GetSystemReport implements SalaryHandler.
func (h *salaryHandlerImpl) GetSystemReport(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r, h.now)
	if !ok {
		return
	}

	report, err := h.salaryService.GetSystemReport(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportSystemReport implements SalaryHandler.
func (h *salaryHandlerImpl) ExportSystemReport(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r, h.now)
	if !ok {
		return
	}

	workbook, err := h.salaryService.ExportSystemReport(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, contentTypeXLSX, fmt.Sprintf("salary-report-%s.xlsx", month), workbook)
}

// monthParam reads ?month=YYYY-MM, defaulting to the current month.
// It writes a 400 and returns false when the value does not parse.
func monthParam(w http.ResponseWriter, r *http.Request, now func() time.Time) (timeutil.Month, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return timeutil.MonthOf(now().UTC()), true
	}

	month, err := timeutil.ParseMonth(raw)
	if err != nil {
		response.BadRequest(w, "Invalid month", map[string]string{
			"month": "month must be in YYYY-MM format",
		})
		return timeutil.Month{}, false
	}
	return month, true
}
