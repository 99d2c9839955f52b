package workshop

import "errors"

var (
	ErrNotFound   = errors.New("workshop not found")
	ErrValidation = errors.New("validation error")
)
