package review

import "errors"

var (
	ErrNoPriorRental = errors.New("driver was never assigned to client")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
