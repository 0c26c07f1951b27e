package navigation

import "errors"

// Precondition failures. None of them leave the grid modified.
var (
	ErrInvalidSize     = errors.New("invalid grid size")
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrMissingEndpoint = errors.New("start or goal not set")
)
