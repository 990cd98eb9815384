package client

import "errors"

var (
	ErrClientExists   = errors.New("client email already registered")
	ErrClientNotFound = errors.New("client not found")
)
