package manager

import "errors"

var (
	ErrManagerExists   = errors.New("manager already registered")
	ErrManagerNotFound = errors.New("manager not found")
)
