package tests

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"

	"taxipark/internal/domain"
	"taxipark/internal/redis"
	"taxipark/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PARK REPOSITORY
// ──────────────────────────────────────────────

// MockParkRepository is a mock implementation of ParkRepository.
type MockParkRepository struct {
	mu         sync.RWMutex
	drivers    []domain.Driver
	passengers []domain.Passenger
	trips      []domain.Trip

	// Counters for verification
	LoadCallCount int32

	// Error injection
	LoadError error
}

// NewMockParkRepository creates a new mock park repository.
func NewMockParkRepository() *MockParkRepository {
	return &MockParkRepository{}
}

// AddDriver adds a driver to the mock dataset.
func (m *MockParkRepository) AddDriver(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = append(m.drivers, domain.Driver{ID: id, Name: "Driver " + id})
}

// AddPassenger adds a passenger to the mock dataset.
func (m *MockParkRepository) AddPassenger(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers = append(m.passengers, domain.Passenger{ID: id, Name: "Passenger " + id})
}

// AddTrip adds a trip to the mock dataset.
func (m *MockParkRepository) AddTrip(trip domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, trip)
}

func (m *MockParkRepository) LoadSnapshot(ctx context.Context) (*domain.TaxiPark, error) {
	atomic.AddInt32(&m.LoadCallCount, 1)
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.NewTaxiPark(m.drivers, m.passengers, m.trips)
}

// ──────────────────────────────────────────────
// MOCK REPORT CACHE
// ──────────────────────────────────────────────

// MockReportCache is an in-memory implementation of ReportCacheInterface.
// Values are stored as JSON, like the Redis implementation.
type MockReportCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// Counters for verification
	GetCallCount        int32
	HitCount            int32
	SetCallCount        int32
	InvalidateCallCount int32

	// Error injection
	GetError error
	SetError error
}

// NewMockReportCache creates a new mock report cache.
func NewMockReportCache() *MockReportCache {
	return &MockReportCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return false, m.GetError
	}
	m.mu.RLock()
	data, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	atomic.AddInt32(&m.HitCount, 1)
	return true, json.Unmarshal(data, dest)
}

func (m *MockReportCache) Set(ctx context.Context, key string, value any) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func (m *MockReportCache) InvalidateVersion(ctx context.Context, version string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	prefix := redis.ReportKey(version, "")
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

// Len returns the number of cached entries (for test assertions).
func (m *MockReportCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Ensure mocks implement interfaces.
var (
	_ repository.ParkRepository  = (*MockParkRepository)(nil)
	_ redis.ReportCacheInterface = (*MockReportCache)(nil)
)

// ──────────────────────────────────────────────
// FIXTURES
// ──────────────────────────────────────────────

// newSampleRepository returns a small park:
//
//	d1: 3 trips, p1 and p2 ride with d1 twice each; earns most of the income
//	d2: 1 trip with p3
//	d3: no trips
func newSampleRepository() *MockParkRepository {
	repo := NewMockParkRepository()
	for _, id := range []string{"d1", "d2", "d3"} {
		repo.AddDriver(id)
	}
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		repo.AddPassenger(id)
	}

	repo.AddTrip(domain.Trip{ID: "t1", DriverID: "d1", PassengerIDs: []string{"p1"}, Duration: 12, Distance: 30, Discount: domain.Discount(0.1)})
	repo.AddTrip(domain.Trip{ID: "t2", DriverID: "d1", PassengerIDs: []string{"p1", "p2"}, Duration: 15, Distance: 40, Discount: domain.Discount(0.2)})
	repo.AddTrip(domain.Trip{ID: "t3", DriverID: "d1", PassengerIDs: []string{"p2"}, Duration: 25, Distance: 50})
	repo.AddTrip(domain.Trip{ID: "t4", DriverID: "d2", PassengerIDs: []string{"p3"}, Duration: 5, Distance: 1})
	return repo
}
