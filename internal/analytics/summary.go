package analytics

import "taxipark/internal/domain"

// Summary bundles the results of every query over one snapshot.
type Summary struct {
	FakeDrivers        []domain.Driver
	FaithfulPassengers []domain.Passenger
	MinTrips           int
	SmartPassengers    []domain.Passenger
	DurationPeriod     *domain.DurationPeriod // nil when the park has no trips
	DurationHistogram  []PeriodCount
	Pareto             ParetoReport
}

// Summarize runs all park-wide queries. Faithful passengers are computed
// for the given minTrips.
func Summarize(park *domain.TaxiPark, minTrips int) Summary {
	summary := Summary{
		FakeDrivers:        FindFakeDrivers(park),
		FaithfulPassengers: FindFaithfulPassengers(park, minTrips),
		MinTrips:           minTrips,
		SmartPassengers:    FindSmartPassengers(park),
		DurationHistogram:  DurationHistogram(park),
		Pareto:             ParetoBreakdown(park),
	}

	if period, ok := FindTheMostFrequentTripDurationPeriod(park); ok {
		summary.DurationPeriod = &period
	}

	return summary
}
