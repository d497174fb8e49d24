package attendance

import "errors"

// Attendance domain errors
var (
	ErrWeekendOrHoliday   = errors.New("cannot check-in on weekend or holiday")
	ErrAlreadyCheckedIn   = errors.New("already checked-in today")
	ErrNoCheckIn          = errors.New("no check-in found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
