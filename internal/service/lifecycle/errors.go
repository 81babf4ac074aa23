package lifecycle

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidAssignment = errors.New("invalid rider assignment")
)
