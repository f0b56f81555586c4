package service

import "errors"

var (
	// ErrSnapshotNotLoaded is returned when a report is requested before any snapshot was loaded.
	ErrSnapshotNotLoaded = errors.New("snapshot not loaded")

	// ErrInvalidDriverID is returned when driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidMinTrips is returned when the minimum trip count is negative.
	ErrInvalidMinTrips = errors.New("invalid minimum trip count")
)
