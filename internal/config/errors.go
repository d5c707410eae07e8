package config

import "errors"

var (
	// ErrEmptyInput is returned when no URL file path is configured
	ErrEmptyInput = errors.New("input cannot be empty")
	// ErrInvalidWorkers is returned when workers is not greater than 0
	ErrInvalidWorkers = errors.New("workers must be greater than 0")
	// ErrInvalidTimeout is returned when timeout is not greater than 0
	ErrInvalidTimeout = errors.New("timeout must be greater than 0")
)
