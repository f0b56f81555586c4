package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidPark is returned when a snapshot breaks referential integrity
// or carries out-of-range trip values.
var ErrInvalidPark = errors.New("invalid taxi park")

// TaxiPark is an immutable snapshot of drivers, passengers and trips.
// Nothing in the service mutates a park after NewTaxiPark returns it.
type TaxiPark struct {
	Version    string
	LoadedAt   time.Time
	Drivers    []Driver
	Passengers []Passenger
	Trips      []Trip

	driverIndex    map[string]int
	passengerIndex map[string]int
}

// NewTaxiPark validates the dataset and returns a snapshot stamped with a new version.
func NewTaxiPark(drivers []Driver, passengers []Passenger, trips []Trip) (*TaxiPark, error) {
	park := &TaxiPark{
		Version:        uuid.New().String(),
		LoadedAt:       time.Now(),
		Drivers:        append([]Driver(nil), drivers...),
		Passengers:     append([]Passenger(nil), passengers...),
		Trips:          append([]Trip(nil), trips...),
		driverIndex:    make(map[string]int, len(drivers)),
		passengerIndex: make(map[string]int, len(passengers)),
	}

	for i, d := range park.Drivers {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: driver at position %d has no id", ErrInvalidPark, i)
		}
		if _, ok := park.driverIndex[d.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate driver %s", ErrInvalidPark, d.ID)
		}
		park.driverIndex[d.ID] = i
	}

	for i, p := range park.Passengers {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: passenger at position %d has no id", ErrInvalidPark, i)
		}
		if _, ok := park.passengerIndex[p.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate passenger %s", ErrInvalidPark, p.ID)
		}
		park.passengerIndex[p.ID] = i
	}

	for _, t := range park.Trips {
		if err := park.validateTrip(t); err != nil {
			return nil, err
		}
	}

	return park, nil
}

func (p *TaxiPark) validateTrip(t Trip) error {
	if _, ok := p.driverIndex[t.DriverID]; !ok {
		return fmt.Errorf("%w: trip %s references unknown driver %s", ErrInvalidPark, t.ID, t.DriverID)
	}

	if len(t.PassengerIDs) == 0 {
		return fmt.Errorf("%w: trip %s has no passengers", ErrInvalidPark, t.ID)
	}

	seen := make(map[string]struct{}, len(t.PassengerIDs))
	for _, id := range t.PassengerIDs {
		if _, ok := p.passengerIndex[id]; !ok {
			return fmt.Errorf("%w: trip %s references unknown passenger %s", ErrInvalidPark, t.ID, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: trip %s lists passenger %s twice", ErrInvalidPark, t.ID, id)
		}
		seen[id] = struct{}{}
	}

	if t.Duration < 0 {
		return fmt.Errorf("%w: trip %s has negative duration", ErrInvalidPark, t.ID)
	}
	if t.Distance < 0 {
		return fmt.Errorf("%w: trip %s has negative distance", ErrInvalidPark, t.ID)
	}
	if d := t.DiscountRate(); d < 0 || d >= 1 {
		return fmt.Errorf("%w: trip %s has discount %v outside [0, 1)", ErrInvalidPark, t.ID, d)
	}

	return nil
}

// Driver returns the driver with the given ID.
func (p *TaxiPark) Driver(id string) (Driver, bool) {
	i, ok := p.driverIndex[id]
	if !ok {
		return Driver{}, false
	}
	return p.Drivers[i], true
}

// Passenger returns the passenger with the given ID.
func (p *TaxiPark) Passenger(id string) (Passenger, bool) {
	i, ok := p.passengerIndex[id]
	if !ok {
		return Passenger{}, false
	}
	return p.Passengers[i], true
}

// ParkBuilder assembles a TaxiPark with generated IDs.
type ParkBuilder struct {
	drivers    []Driver
	passengers []Passenger
	trips      []Trip
}

// NewParkBuilder creates an empty ParkBuilder.
func NewParkBuilder() *ParkBuilder {
	return &ParkBuilder{}
}

// AddDriver registers a driver and returns its generated ID.
func (b *ParkBuilder) AddDriver(name string) string {
	id := uuid.New().String()
	b.drivers = append(b.drivers, Driver{ID: id, Name: name})
	return id
}

// AddPassenger registers a passenger and returns its generated ID.
func (b *ParkBuilder) AddPassenger(name string) string {
	id := uuid.New().String()
	b.passengers = append(b.passengers, Passenger{ID: id, Name: name})
	return id
}

// AddTrip records a trip. A nil discount means no discount.
func (b *ParkBuilder) AddTrip(driverID string, passengerIDs []string, duration int, distance float64, discount *float64) string {
	id := uuid.New().String()
	b.trips = append(b.trips, Trip{
		ID:           id,
		DriverID:     driverID,
		PassengerIDs: passengerIDs,
		Duration:     duration,
		Distance:     distance,
		Discount:     discount,
	})
	return id
}

// Build validates and returns the park.
func (b *ParkBuilder) Build() (*TaxiPark, error) {
	return NewTaxiPark(b.drivers, b.passengers, b.trips)
}
