package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("email already exists")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
	ErrInvalidRole     = errors.New("invalid role")
)
