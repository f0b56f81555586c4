package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrSnapshotUnavailable is returned when a snapshot could not be read.
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")
)
