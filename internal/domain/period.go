package domain

import "fmt"

// PeriodLength is the width of a trip duration period in minutes.
const PeriodLength = 10

// DurationPeriod is an inclusive range of trip durations: [Start, End].
type DurationPeriod struct {
	Start int
	End   int
}

// PeriodOf returns the period containing the given duration.
// Durations are expected to be non-negative.
func PeriodOf(duration int) DurationPeriod {
	start := duration / PeriodLength * PeriodLength
	return DurationPeriod{Start: start, End: start + PeriodLength - 1}
}

// Contains reports whether the duration falls inside the period.
func (p DurationPeriod) Contains(duration int) bool {
	return duration >= p.Start && duration <= p.End
}

func (p DurationPeriod) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}
