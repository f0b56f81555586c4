package analytics

import (
	"math"
	"sort"

	"taxipark/internal/domain"
)

const (
	paretoDriverShare = 0.2
	paretoIncomeShare = 0.8
)

// DriverIncome is the total income a driver brought in.
type DriverIncome struct {
	Driver domain.Driver
	Income float64
}

// ParetoReport holds the numbers behind the 80/20 check.
type ParetoReport struct {
	DriverCount int
	TopCount    int     // round(20% of all drivers)
	TopIncome   float64 // Income of the TopCount best-earning drivers
	TotalIncome float64
	Threshold   float64 // 80% of TotalIncome
	Holds       bool
}

// TripIncome returns the money a trip brought in: the discounted sum of
// its duration and distance.
func TripIncome(trip domain.Trip) float64 {
	return (1 - trip.DiscountRate()) * (float64(trip.Duration) + trip.Distance)
}

// DriverIncomes returns every driver of the park with their income, best
// earners first. Drivers with equal income keep the park's order.
func DriverIncomes(park *domain.TaxiPark) []DriverIncome {
	byDriver := make(map[string]float64, len(park.Drivers))
	for _, trip := range park.Trips {
		byDriver[trip.DriverID] += TripIncome(trip)
	}

	incomes := make([]DriverIncome, 0, len(park.Drivers))
	for _, d := range park.Drivers {
		incomes = append(incomes, DriverIncome{Driver: d, Income: byDriver[d.ID]})
	}
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Income > incomes[j].Income
	})
	return incomes
}

// ParetoBreakdown checks whether 20% of the drivers contribute at least 80%
// of the income and reports the figures used. A park without trips never
// satisfies the principle.
func ParetoBreakdown(park *domain.TaxiPark) ParetoReport {
	report := ParetoReport{
		DriverCount: len(park.Drivers),
		TopCount:    int(math.Round(paretoDriverShare * float64(len(park.Drivers)))),
	}

	for _, trip := range park.Trips {
		report.TotalIncome += TripIncome(trip)
	}
	report.Threshold = paretoIncomeShare * report.TotalIncome

	if len(park.Trips) == 0 {
		return report
	}

	incomes := DriverIncomes(park)
	for i := 0; i < report.TopCount && i < len(incomes); i++ {
		report.TopIncome += incomes[i].Income
	}

	report.Holds = report.TopIncome >= report.Threshold
	return report
}

// CheckParetoPrinciple reports whether the top 20% of drivers earned at
// least 80% of the total income.
func CheckParetoPrinciple(park *domain.TaxiPark) bool {
	return ParetoBreakdown(park).Holds
}
