package memory

import "taxipark/internal/domain"

// NewDemoRepository returns a repository over a small fixed park, used when
// the service runs without a database.
func NewDemoRepository() *ParkRepository {
	drivers := []domain.Driver{
		{ID: "D-1", Name: "Alice"},
		{ID: "D-2", Name: "Bob"},
		{ID: "D-3", Name: "Carol"},
		{ID: "D-4", Name: "Dave"},
		{ID: "D-5", Name: "Erin"},
	}

	passengers := []domain.Passenger{
		{ID: "P-1", Name: "Frank"},
		{ID: "P-2", Name: "Grace"},
		{ID: "P-3", Name: "Heidi"},
		{ID: "P-4", Name: "Ivan"},
		{ID: "P-5", Name: "Judy"},
		{ID: "P-6", Name: "Mallory"},
	}

	trip := func(id, driver string, passengers []string, duration int, distance float64, discount *float64) domain.Trip {
		return domain.Trip{ID: id, DriverID: driver, PassengerIDs: passengers, Duration: duration, Distance: distance, Discount: discount}
	}

	trips := []domain.Trip{
		trip("T-1", "D-1", []string{"P-1"}, 12, 6.5, nil),
		trip("T-2", "D-1", []string{"P-1", "P-2"}, 25, 14.0, domain.Discount(0.1)),
		trip("T-3", "D-1", []string{"P-2"}, 18, 9.2, domain.Discount(0.2)),
		trip("T-4", "D-2", []string{"P-3"}, 7, 2.1, nil),
		trip("T-5", "D-1", []string{"P-1", "P-4"}, 31, 22.4, nil),
		trip("T-6", "D-3", []string{"P-2"}, 15, 7.8, domain.Discount(0.3)),
		trip("T-7", "D-1", []string{"P-5"}, 44, 35.0, nil),
		trip("T-8", "D-2", []string{"P-3", "P-4"}, 11, 4.0, domain.Discount(0)),
		trip("T-9", "D-1", []string{"P-1"}, 16, 8.3, domain.Discount(0.15)),
	}

	return NewParkRepository(drivers, passengers, trips)
}
