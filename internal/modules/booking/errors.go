package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrConflict          = errors.New("time range conflicts with an existing booking")
	ErrForbidden         = errors.New("booking is blocked and cannot be edited")
	ErrInvalidTransition = errors.New("status transition not permitted")
)
