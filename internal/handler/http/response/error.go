package response

import (
	"errors"
	"net/http"

	"github.com/scon-hq/scon-backend-go/internal/domain/auth"
	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/domain/owner"
	"github.com/scon-hq/scon-backend-go/internal/domain/payroll"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/scon-hq/scon-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, owner.ErrOwnerNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, owner.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrNotStoreOwner):
		Forbidden(w, "You do not own this store")
	case errors.Is(err, store.ErrInvalidBusinessHours):
		BadRequest(w, "Opening and closing times must differ", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this store")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrInvalidYearMonth):
		BadRequest(w, "yearMonth must be in YYYY-MM format", nil)
	case errors.Is(err, schedule.ErrInvalidDateKey):
		BadRequest(w, "date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, schedule.ErrWeekOutOfRange):
		BadRequest(w, "Week index is out of range for this month", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidRate):
		BadRequest(w, "Hourly rate must be non-negative", nil)
	case errors.Is(err, payroll.ErrInvalidShift):
		BadRequest(w, "Shift has invalid times", nil)

	// Shared parsing errors
	case errors.Is(err, timeutil.ErrInvalidTimeFormat):
		BadRequest(w, "Times must be in HH:MM format", nil)
	case errors.Is(err, timeutil.ErrInvalidWeekday):
		BadRequest(w, "Weekday must be one of MONDAY..SUNDAY", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
