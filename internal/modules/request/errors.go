package request

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("request not found")
	// ErrInvalidState means the request already left "new"; approved and
	// rejected requests are immutable.
	ErrInvalidState = errors.New("request is no longer pending")
)
