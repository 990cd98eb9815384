package driver

import "errors"

var (
	ErrDriverExists     = errors.New("driver name already registered")
	ErrDriverNotFound   = errors.New("driver not found")
	ErrHasActiveRentals = errors.New("driver has rentals today or in the future")
)
