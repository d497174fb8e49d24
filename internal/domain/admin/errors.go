package admin

import "errors"

var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)
