package domain

import "errors"

// ErrValidation is the root error for domain entity validation failures.
// Entity-specific validation errors wrap it, so callers can match either
// the specific error or the whole class with errors.Is.
var ErrValidation = errors.New("validation failed")
