package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrManagerNotFound    = errors.New("manager not found")
	ErrOutOfScope         = errors.New("employee is outside the caller's visibility")
)
