// Package analytics implements the taxi park report queries.
//
// Every function is a pure read over an immutable *domain.TaxiPark. Results
// that are sets are returned as slices in the park's own order, so the same
// snapshot always yields the same output. Accumulators are keyed by entity
// ID and live only for the duration of one call.
package analytics

import "taxipark/internal/domain"

// FindFakeDrivers returns the drivers who performed no trips.
func FindFakeDrivers(park *domain.TaxiPark) []domain.Driver {
	active := make(map[string]struct{}, len(park.Drivers))
	for _, trip := range park.Trips {
		active[trip.DriverID] = struct{}{}
	}

	fake := make([]domain.Driver, 0)
	for _, driver := range park.Drivers {
		if _, ok := active[driver.ID]; !ok {
			fake = append(fake, driver)
		}
	}
	return fake
}
