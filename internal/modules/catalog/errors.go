package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found in tenant")
	ErrInvalidPrice    = errors.New("price must be zero or positive")
	ErrInvalidDuration = errors.New("duration must be positive")
)
