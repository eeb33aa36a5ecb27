package domain

import "errors"

// Core error taxonomy. Invalid input is always surfaced to the caller for
// correction; NotFound/Forbidden originate in the repository layer and
// propagate unchanged.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)
