package allocation

import "errors"

var (
	// ErrModelNotFound means the referenced vehicle model does not exist.
	ErrModelNotFound = errors.New("vehicle model not found")
	// ErrModelUnavailable means the model already has a rental on the date.
	ErrModelUnavailable = errors.New("vehicle model already rented on this date")
	// ErrNoDriverAvailable means no qualified driver is free on the date.
	ErrNoDriverAvailable = errors.New("no available driver for this vehicle model on this date")
	// ErrConflict means the booking repeatedly lost the race against
	// concurrent bookings; the caller may retry.
	ErrConflict = errors.New("booking conflicted with concurrent requests")

	// ErrLedgerClash is the repository-level translation of a unique-index
	// violation on the rentals table. The engine retries on it and
	// surfaces ErrConflict once the retry budget is spent.
	ErrLedgerClash = errors.New("rental insert clashed with a concurrent booking")
)
