package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"taxipark/internal/domain"
	"taxipark/internal/repository"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// ParkRepository is a PostgreSQL implementation of repository.ParkRepository.
type ParkRepository struct {
	db *sql.DB
}

// NewParkRepository creates a new PostgreSQL park repository.
func NewParkRepository(db *sql.DB) *ParkRepository {
	return &ParkRepository{db: db}
}

// LoadSnapshot reads the whole park inside one read-only transaction so
// drivers, passengers and trips come from the same point in time.
func (r *ParkRepository) LoadSnapshot(ctx context.Context) (*domain.TaxiPark, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", repository.ErrSnapshotUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	drivers, err := loadDrivers(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: drivers: %v", repository.ErrSnapshotUnavailable, err)
	}

	passengers, err := loadPassengers(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: passengers: %v", repository.ErrSnapshotUnavailable, err)
	}

	trips, err := loadTrips(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: trips: %v", repository.ErrSnapshotUnavailable, err)
	}

	if err := attachPassengers(ctx, tx, trips); err != nil {
		return nil, fmt.Errorf("%w: trip passengers: %v", repository.ErrSnapshotUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", repository.ErrSnapshotUnavailable, err)
	}

	ordered := make([]domain.Trip, 0, len(trips.order))
	for _, id := range trips.order {
		ordered = append(ordered, *trips.byID[id])
	}

	return domain.NewTaxiPark(drivers, passengers, ordered)
}

func loadDrivers(ctx context.Context, q Querier) ([]domain.Driver, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, COALESCE(name, '') FROM drivers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func loadPassengers(ctx context.Context, q Querier) ([]domain.Passenger, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, COALESCE(name, '') FROM passengers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passengers []domain.Passenger
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

// tripSet keeps trips addressable by ID while preserving load order.
type tripSet struct {
	order []string
	byID  map[string]*domain.Trip
}

func loadTrips(ctx context.Context, q Querier) (*tripSet, error) {
	query := `
		SELECT id, driver_id, duration_minutes, distance_km, discount
		FROM trips ORDER BY id
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := &tripSet{byID: make(map[string]*domain.Trip)}
	for rows.Next() {
		var trip domain.Trip
		var discount sql.NullFloat64
		if err := rows.Scan(&trip.ID, &trip.DriverID, &trip.Duration, &trip.Distance, &discount); err != nil {
			return nil, err
		}
		if discount.Valid {
			trip.Discount = domain.Discount(discount.Float64)
		}
		set.order = append(set.order, trip.ID)
		set.byID[trip.ID] = &trip
	}
	return set, rows.Err()
}

func attachPassengers(ctx context.Context, q Querier, trips *tripSet) error {
	rows, err := q.QueryContext(ctx, `SELECT trip_id, passenger_id FROM trip_passengers ORDER BY trip_id, passenger_id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var tripID, passengerID string
		if err := rows.Scan(&tripID, &passengerID); err != nil {
			return err
		}
		trip, ok := trips.byID[tripID]
		if !ok {
			return fmt.Errorf("passenger %s on unknown trip %s: %w", passengerID, tripID, repository.ErrNotFound)
		}
		trip.PassengerIDs = append(trip.PassengerIDs, passengerID)
	}
	return rows.Err()
}
