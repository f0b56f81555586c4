package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"taxipark/internal/analytics"
	"taxipark/internal/domain"
	"taxipark/internal/metrics"
	"taxipark/internal/redis"
	"taxipark/internal/repository"
)

// Query names, used for metrics, tracing and cache keys.
const (
	QueryFakeDrivers        = "fake_drivers"
	QueryFaithfulPassengers = "faithful_passengers"
	QueryFrequentPassengers = "frequent_passengers"
	QuerySmartPassengers    = "smart_passengers"
	QueryDurationPeriod     = "duration_period"
	QueryDurationHistogram  = "duration_histogram"
	QueryPareto             = "pareto"
	QueryDriverIncomes      = "driver_incomes"
	QuerySummary            = "summary"
)

// ReportService answers analytical queries over the current taxi park snapshot.
//
// The snapshot pointer is the only shared state: Reload swaps in a freshly
// built park and every query reads the pointer once, so a query always sees
// one consistent, immutable park.
type ReportService struct {
	repo     repository.ParkRepository
	cache    redis.ReportCacheInterface // Optional
	logger   *slog.Logger
	snapshot atomic.Pointer[domain.TaxiPark]
}

// NewReportService creates a new ReportService. cache may be nil.
func NewReportService(repo repository.ParkRepository, cache redis.ReportCacheInterface, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		repo:   repo,
		cache:  cache,
		logger: logger.With("component", "report_service"),
	}
}

// Reload loads a new snapshot from the repository and makes it current.
// On failure the previous snapshot stays in place.
func (s *ReportService) Reload(ctx context.Context) (*domain.TaxiPark, error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment("snapshot/reload").End()
	}

	park, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		metrics.ObserveReload(0, err)
		s.logger.Error("snapshot reload failed", "error", err)
		return nil, fmt.Errorf("reload snapshot: %w", err)
	}

	previous := s.snapshot.Swap(park)
	metrics.ObserveReload(len(park.Trips), nil)
	s.logger.Info("snapshot loaded",
		"version", park.Version,
		"drivers", len(park.Drivers),
		"passengers", len(park.Passengers),
		"trips", len(park.Trips),
	)

	if previous != nil && s.cache != nil {
		if err := s.cache.InvalidateVersion(ctx, previous.Version); err != nil {
			s.logger.Warn("failed to invalidate cached reports", "version", previous.Version, "error", err)
		}
	}

	return park, nil
}

// Snapshot returns the current park.
func (s *ReportService) Snapshot() (*domain.TaxiPark, error) {
	park := s.snapshot.Load()
	if park == nil {
		return nil, ErrSnapshotNotLoaded
	}
	return park, nil
}

// FakeDrivers returns the drivers who performed no trips.
func (s *ReportService) FakeDrivers(ctx context.Context) ([]domain.Driver, error) {
	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, s, park, QueryFakeDrivers, nil, func() []domain.Driver {
		return analytics.FindFakeDrivers(park)
	}), nil
}

// FaithfulPassengers returns the passengers who completed at least minTrips trips.
func (s *ReportService) FaithfulPassengers(ctx context.Context, minTrips int) ([]domain.Passenger, error) {
	if minTrips < 0 {
		return nil, ErrInvalidMinTrips
	}

	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	params := []string{strconv.Itoa(minTrips)}
	return runQuery(ctx, s, park, QueryFaithfulPassengers, params, func() []domain.Passenger {
		return analytics.FindFaithfulPassengers(park, minTrips)
	}), nil
}

// FrequentPassengers returns the passengers taken by the driver more than once.
func (s *ReportService) FrequentPassengers(ctx context.Context, driverID string) ([]domain.Passenger, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}

	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := park.Driver(driverID); !ok {
		return nil, fmt.Errorf("driver %s: %w", driverID, repository.ErrNotFound)
	}

	return runQuery(ctx, s, park, QueryFrequentPassengers, []string{driverID}, func() []domain.Passenger {
		return analytics.FindFrequentPassengers(park, driverID)
	}), nil
}

// SmartPassengers returns the passengers who had a discount on most of their trips.
func (s *ReportService) SmartPassengers(ctx context.Context) ([]domain.Passenger, error) {
	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, s, park, QuerySmartPassengers, nil, func() []domain.Passenger {
		return analytics.FindSmartPassengers(park)
	}), nil
}

// MostFrequentDurationPeriod returns the duration period with the most trips,
// or nil when the park has no trips.
func (s *ReportService) MostFrequentDurationPeriod(ctx context.Context) (*domain.DurationPeriod, error) {
	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, s, park, QueryDurationPeriod, nil, func() *domain.DurationPeriod {
		period, ok := analytics.FindTheMostFrequentTripDurationPeriod(park)
		if !ok {
			return nil
		}
		return &period
	}), nil
}

// DurationHistogram returns the trip count per duration period.
func (s *ReportService) DurationHistogram(ctx context.Context) ([]analytics.PeriodCount, error) {
	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, s, park, QueryDurationHistogram, nil, func() []analytics.PeriodCount {
		return analytics.DurationHistogram(park)
	}), nil
}

// Pareto checks the 80/20 income principle and returns the figures behind it.
func (s *ReportService) Pareto(ctx context.Context) (analytics.ParetoReport, error) {
	park, err := s.Snapshot()
	if err != nil {
		return analytics.ParetoReport{}, err
	}
	return runQuery(ctx, s, park, QueryPareto, nil, func() analytics.ParetoReport {
		return analytics.ParetoBreakdown(park)
	}), nil
}

// DriverIncomes returns every driver's income, best earners first.
func (s *ReportService) DriverIncomes(ctx context.Context) ([]analytics.DriverIncome, error) {
	park, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return runQuery(ctx, s, park, QueryDriverIncomes, nil, func() []analytics.DriverIncome {
		return analytics.DriverIncomes(park)
	}), nil
}

// Summary runs every park-wide query at once.
func (s *ReportService) Summary(ctx context.Context, minTrips int) (analytics.Summary, error) {
	if minTrips < 0 {
		return analytics.Summary{}, ErrInvalidMinTrips
	}

	park, err := s.Snapshot()
	if err != nil {
		return analytics.Summary{}, err
	}
	params := []string{strconv.Itoa(minTrips)}
	return runQuery(ctx, s, park, QuerySummary, params, func() analytics.Summary {
		return analytics.Summarize(park, minTrips)
	}), nil
}

// runQuery computes a report, serving it from the cache when possible.
// Cache failures never fail the query; the result is computed instead.
func runQuery[T any](ctx context.Context, s *ReportService, park *domain.TaxiPark, name string, params []string, compute func() T) T {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment("report/" + name).End()
	}

	key := redis.ReportKey(park.Version, name, params...)

	if s.cache != nil {
		var cached T
		hit, err := s.cache.Get(ctx, key, &cached)
		switch {
		case err != nil:
			metrics.ObserveCache(metrics.CacheError)
			s.logger.Warn("report cache read failed", "query", name, "error", err)
		case hit:
			metrics.ObserveCache(metrics.CacheHit)
			return cached
		default:
			metrics.ObserveCache(metrics.CacheMiss)
		}
	}

	start := time.Now()
	result := compute()
	elapsed := time.Since(start)
	metrics.ObserveQuery(name, elapsed)
	s.logger.Debug("query computed", "query", name, "version", park.Version, "elapsed", elapsed)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn("report cache write failed", "query", name, "error", err)
		}
	}

	return result
}
