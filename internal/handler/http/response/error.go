package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrconsole/hr-console-backend/internal/domain/admin"
	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/domain/auth"
	"github.com/hrconsole/hr-console-backend/internal/domain/employee"
	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		if errors.Is(err, leave.ErrMissingField) {
			BadRequest(w, leave.ErrMissingField.Error(), validationErrs.ToMap())
			return
		}
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already exists")

	// Admin and employee domain errors
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, admin.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrReportToNotFound):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateDate):
		Conflict(w, "A holiday already exists on this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrWeekendOrHoliday),
		errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNoCheckIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrMissingField),
		errors.Is(err, leave.ErrInvalidDate),
		errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, leave.ErrWeekendDate),
		errors.Is(err, leave.ErrHolidayDate),
		errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Event and team domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrNoTeamAssigned):
		NotFound(w, "No team assigned")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists")
	case errors.Is(err, team.ErrMemberNotFound):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
