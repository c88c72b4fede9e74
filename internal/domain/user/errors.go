package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrUserDeactivated       = errors.New("user account is deactivated")
	ErrHRAccessRequired      = errors.New("hr access required")
	ErrManagerAccessRequired = errors.New("manager or hr access required")
	ErrManagerRoleRequired   = errors.New("manager role required")
)
