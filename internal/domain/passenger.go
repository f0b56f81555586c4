package domain

// Passenger represents a rider in the taxi park.
// Passengers are identified by ID only; Name is informational.
type Passenger struct {
	ID   string
	Name string
}
