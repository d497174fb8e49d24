package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrMissingField         = errors.New("all fields are required")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidRange         = errors.New("'from' date cannot be after 'to' date")
	ErrWeekendDate          = errors.New("cannot apply leave on weekend")
	ErrHolidayDate          = errors.New("cannot apply leave on holiday")
	ErrInvalidStatus        = errors.New("status must be approved or rejected")
)
