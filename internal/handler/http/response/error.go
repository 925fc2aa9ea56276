package response

import (
	"errors"
	"net/http"

	"github.com/ydm-hr/hr-backend-go/internal/domain/attendance"
	"github.com/ydm-hr/hr-backend-go/internal/domain/auth"
	"github.com/ydm-hr/hr-backend-go/internal/domain/employee"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/validator"
	"github.com/ydm-hr/hr-backend-go/internal/repository/sheetdb"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrIqamaNoExists):
		Conflict(w, "Iqama number already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance already recorded for this employee and date")
	case errors.Is(err, attendance.ErrAmbiguousKey):
		Conflict(w, "Multiple records match this employee and date; retry by record id")

	// Entity store failures
	case errors.Is(err, sheetdb.ErrStoreUnavailable):
		BadGateway(w, "Entity store is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
