package domain

// Trip represents one completed ride.
type Trip struct {
	ID           string
	DriverID     string
	PassengerIDs []string // Non-empty, no duplicates
	Duration     int      // In minutes
	Distance     float64  // In kilometers
	Discount     *float64 // nil = no discount, otherwise a fraction in [0, 1)
}

// DiscountRate returns the discount fraction, treating a missing discount as 0.
func (t Trip) DiscountRate() float64 {
	if t.Discount == nil {
		return 0
	}
	return *t.Discount
}

// HasDiscount reports whether a non-zero discount was applied to the trip.
func (t Trip) HasDiscount() bool {
	return t.DiscountRate() != 0
}

// Discount returns a pointer to d, for building trips with a discount.
func Discount(d float64) *float64 {
	return &d
}
