package memory

import (
	"context"

	"taxipark/internal/domain"
)

// ParkRepository serves a fixed dataset held in memory.
type ParkRepository struct {
	drivers    []domain.Driver
	passengers []domain.Passenger
	trips      []domain.Trip
}

// NewParkRepository creates a repository over the given dataset.
func NewParkRepository(drivers []domain.Driver, passengers []domain.Passenger, trips []domain.Trip) *ParkRepository {
	return &ParkRepository{
		drivers:    drivers,
		passengers: passengers,
		trips:      trips,
	}
}

// NewParkRepositoryFromPark creates a repository that serves the contents of an existing park.
func NewParkRepositoryFromPark(park *domain.TaxiPark) *ParkRepository {
	return NewParkRepository(park.Drivers, park.Passengers, park.Trips)
}

// LoadSnapshot returns a new snapshot of the in-memory dataset.
func (r *ParkRepository) LoadSnapshot(ctx context.Context) (*domain.TaxiPark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.NewTaxiPark(r.drivers, r.passengers, r.trips)
}
