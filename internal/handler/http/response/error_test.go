package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/salary"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"validation", validator.ValidationErrors{{Field: "status", Message: "is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"data error", fmt.Errorf("employee e1: %w", salary.NewDataError("e1", "bad record")), http.StatusUnprocessableEntity, "INVALID_DATA"},
		{"config error", salary.NewConfigError("e1", "no multiplier"), http.StatusConflict, "CONFLICT"},
		{"forbidden", user.ErrInsufficientPermissions, http.StatusForbidden, "FORBIDDEN"},
		{"employee not found", fmt.Errorf("failed to get employee: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"inactive", employee.ErrEmployeeInactive, http.StatusConflict, "CONFLICT"},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "application/pdf", "payslip.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payslip.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
}
