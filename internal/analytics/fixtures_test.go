package analytics

import (
	"fmt"
	"testing"

	"taxipark/internal/domain"
)

// newPark builds a park from plain IDs. Trips without an ID get a sequential one.
func newPark(t *testing.T, driverIDs, passengerIDs []string, trips ...domain.Trip) *domain.TaxiPark {
	t.Helper()

	drivers := make([]domain.Driver, 0, len(driverIDs))
	for _, id := range driverIDs {
		drivers = append(drivers, domain.Driver{ID: id, Name: "Driver " + id})
	}

	passengers := make([]domain.Passenger, 0, len(passengerIDs))
	for _, id := range passengerIDs {
		passengers = append(passengers, domain.Passenger{ID: id, Name: "Passenger " + id})
	}

	for i := range trips {
		if trips[i].ID == "" {
			trips[i].ID = fmt.Sprintf("trip-%d", i+1)
		}
	}

	park, err := domain.NewTaxiPark(drivers, passengers, trips)
	if err != nil {
		t.Fatalf("failed to build park: %v", err)
	}
	return park
}

func trip(driverID string, passengerIDs []string, duration int, distance float64, discount *float64) domain.Trip {
	return domain.Trip{
		DriverID:     driverID,
		PassengerIDs: passengerIDs,
		Duration:     duration,
		Distance:     distance,
		Discount:     discount,
	}
}

func ids[T domain.Driver | domain.Passenger](items []T) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		switch v := any(item).(type) {
		case domain.Driver:
			result = append(result, v.ID)
		case domain.Passenger:
			result = append(result, v.ID)
		}
	}
	return result
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func isSubset(sub, super []string) bool {
	set := make(map[string]struct{}, len(super))
	for _, id := range super {
		set[id] = struct{}{}
	}
	for _, id := range sub {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
