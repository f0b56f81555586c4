package repository

import (
	"context"

	"taxipark/internal/domain"
)

// ParkRepository loads taxi park snapshots.
type ParkRepository interface {
	// LoadSnapshot reads every driver, passenger and trip and returns a
	// validated, immutable park.
	LoadSnapshot(ctx context.Context) (*domain.TaxiPark, error)
}
