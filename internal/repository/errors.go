package repository

import "errors"

var (
	// ErrNotFound is returned when a stored aggregate doesn't exist yet
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the backing store cannot be
	// read or written
	ErrStorageUnavailable = errors.New("storage unavailable")
)
