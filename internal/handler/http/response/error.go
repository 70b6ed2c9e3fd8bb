package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors. Duplicate business keys are 400 per the
	// API contract.
	case errors.Is(err, employee.ErrEmployeeIDExists):
		BadRequest(w, "Employee ID already exists", nil)
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Email already exists", nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default: unexpected store failure. The message is passed through
	// for diagnostics only.
	default:
		slog.Error("Unexpected error", "error", err)
		InternalServerError(w, "Database error: "+err.Error())
	}
}
