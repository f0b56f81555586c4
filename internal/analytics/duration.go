package analytics

import (
	"sort"

	"taxipark/internal/domain"
)

// FindTheMostFrequentTripDurationPeriod returns the duration period
// (0..9, 10..19, ...) that contains the most trips. When several periods
// tie, the one with the lowest start wins. The boolean is false when the
// park has no trips.
func FindTheMostFrequentTripDurationPeriod(park *domain.TaxiPark) (domain.DurationPeriod, bool) {
	if len(park.Trips) == 0 {
		return domain.DurationPeriod{}, false
	}

	counts := make(map[domain.DurationPeriod]int)
	for _, trip := range park.Trips {
		counts[domain.PeriodOf(trip.Duration)]++
	}

	var best domain.DurationPeriod
	bestCount := 0
	for period, count := range counts {
		if count > bestCount || (count == bestCount && period.Start < best.Start) {
			best, bestCount = period, count
		}
	}
	return best, true
}

// DurationHistogram returns the trip count per duration period, ordered by
// period start. Periods without trips are omitted.
func DurationHistogram(park *domain.TaxiPark) []PeriodCount {
	counts := make(map[int]int)
	for _, trip := range park.Trips {
		counts[domain.PeriodOf(trip.Duration).Start]++
	}

	histogram := make([]PeriodCount, 0, len(counts))
	for start, count := range counts {
		histogram = append(histogram, PeriodCount{Period: domain.PeriodOf(start), Trips: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].Period.Start < histogram[j].Period.Start
	})
	return histogram
}

// PeriodCount is the number of trips that fall in one duration period.
type PeriodCount struct {
	Period domain.DurationPeriod
	Trips  int
}
