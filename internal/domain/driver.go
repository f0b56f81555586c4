package domain

// Driver represents a driver in the taxi park.
// Drivers are identified by ID only; Name is informational.
type Driver struct {
	ID   string
	Name string
}
