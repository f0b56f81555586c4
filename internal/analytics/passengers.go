package analytics

import "taxipark/internal/domain"

// FindFaithfulPassengers returns the passengers who completed at least
// minTrips trips. With minTrips == 0 every passenger qualifies, including
// those who never rode.
func FindFaithfulPassengers(park *domain.TaxiPark, minTrips int) []domain.Passenger {
	if minTrips <= 0 {
		return append(make([]domain.Passenger, 0, len(park.Passengers)), park.Passengers...)
	}

	counts := make(map[string]int, len(park.Passengers))
	for _, trip := range park.Trips {
		for _, id := range trip.PassengerIDs {
			counts[id]++
		}
	}

	return filterPassengers(park, func(id string) bool {
		return counts[id] >= minTrips
	})
}

// FindFrequentPassengers returns the passengers taken by the given driver
// in more than one trip.
func FindFrequentPassengers(park *domain.TaxiPark, driverID string) []domain.Passenger {
	counts := make(map[string]int)
	for _, trip := range park.Trips {
		if trip.DriverID != driverID {
			continue
		}
		for _, id := range trip.PassengerIDs {
			counts[id]++
		}
	}

	return filterPassengers(park, func(id string) bool {
		return counts[id] > 1
	})
}

// FindSmartPassengers returns the passengers who had a discount on the
// majority of their trips.
func FindSmartPassengers(park *domain.TaxiPark) []domain.Passenger {
	type tally struct {
		total      int
		discounted int
	}

	tallies := make(map[string]*tally, len(park.Passengers))
	for _, trip := range park.Trips {
		discounted := trip.HasDiscount()
		for _, id := range trip.PassengerIDs {
			t, ok := tallies[id]
			if !ok {
				t = &tally{}
				tallies[id] = t
			}
			t.total++
			if discounted {
				t.discounted++
			}
		}
	}

	return filterPassengers(park, func(id string) bool {
		t, ok := tallies[id]
		return ok && t.discounted > t.total-t.discounted
	})
}

func filterPassengers(park *domain.TaxiPark, keep func(id string) bool) []domain.Passenger {
	result := make([]domain.Passenger, 0)
	for _, p := range park.Passengers {
		if keep(p.ID) {
			result = append(result, p)
		}
	}
	return result
}
