package catalog

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidType    = errors.New("invalid resource type")
	ErrActiveBookings = errors.New("resource has active bookings")
)
