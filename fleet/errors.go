package fleet

import "errors"

var (
	ErrVehicleExists   = errors.New("vehicle brand already registered")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrModelNotFound   = errors.New("vehicle model not found")
)
