package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrReportToNotFound = errors.New("report_to does not reference an existing person")
)
