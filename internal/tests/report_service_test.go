package tests

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"taxipark/internal/domain"
	"taxipark/internal/repository"
	"taxipark/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoadedService(t *testing.T, repo *MockParkRepository, cache *MockReportCache) *service.ReportService {
	t.Helper()
	var svc *service.ReportService
	if cache != nil {
		svc = service.NewReportService(repo, cache, discardLogger())
	} else {
		svc = service.NewReportService(repo, nil, discardLogger())
	}
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	return svc
}

func passengerIDs(passengers []domain.Passenger) []string {
	ids := make([]string, 0, len(passengers))
	for _, p := range passengers {
		ids = append(ids, p.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// ──────────────────────────────────────────────
// SNAPSHOT LIFECYCLE
// ──────────────────────────────────────────────

func TestReportService_QueriesBeforeReloadFail(t *testing.T) {
	t.Parallel()

	svc := service.NewReportService(newSampleRepository(), nil, discardLogger())

	if _, err := svc.FakeDrivers(context.Background()); !errors.Is(err, service.ErrSnapshotNotLoaded) {
		t.Errorf("expected ErrSnapshotNotLoaded, got %v", err)
	}
	if _, err := svc.Pareto(context.Background()); !errors.Is(err, service.ErrSnapshotNotLoaded) {
		t.Errorf("expected ErrSnapshotNotLoaded, got %v", err)
	}
}

func TestReportService_ReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	repo := newSampleRepository()
	svc := newLoadedService(t, repo, nil)
	before, _ := svc.Snapshot()

	repo.LoadError = repository.ErrSnapshotUnavailable
	if _, err := svc.Reload(context.Background()); !errors.Is(err, repository.ErrSnapshotUnavailable) {
		t.Fatalf("expected ErrSnapshotUnavailable, got %v", err)
	}

	after, err := svc.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Version != before.Version {
		t.Error("failed reload must not replace the snapshot")
	}
}

func TestReportService_ReloadRejectsInvalidPark(t *testing.T) {
	t.Parallel()

	repo := NewMockParkRepository()
	repo.AddDriver("d1")
	repo.AddTrip(domain.Trip{ID: "t1", DriverID: "d1", PassengerIDs: []string{"ghost"}, Duration: 5})

	svc := service.NewReportService(repo, nil, discardLogger())
	if _, err := svc.Reload(context.Background()); !errors.Is(err, domain.ErrInvalidPark) {
		t.Errorf("expected ErrInvalidPark, got %v", err)
	}
}

func TestReportService_ReloadPicksUpNewData(t *testing.T) {
	t.Parallel()

	repo := newSampleRepository()
	svc := newLoadedService(t, repo, nil)

	fake, _ := svc.FakeDrivers(context.Background())
	if len(fake) != 1 || fake[0].ID != "d3" {
		t.Fatalf("expected d3 to be fake, got %v", fake)
	}

	repo.AddTrip(domain.Trip{ID: "t5", DriverID: "d3", PassengerIDs: []string{"p4"}, Duration: 3, Distance: 2})
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}

	fake, _ = svc.FakeDrivers(context.Background())
	if len(fake) != 0 {
		t.Errorf("expected no fake drivers after reload, got %v", fake)
	}
}

// ──────────────────────────────────────────────
// QUERIES
// ──────────────────────────────────────────────

func TestReportService_Queries(t *testing.T) {
	t.Parallel()

	svc := newLoadedService(t, newSampleRepository(), nil)
	ctx := context.Background()

	fake, err := svc.FakeDrivers(ctx)
	if err != nil || len(fake) != 1 || fake[0].ID != "d3" {
		t.Errorf("fake drivers: expected [d3], got %v (err %v)", fake, err)
	}

	faithful, err := svc.FaithfulPassengers(ctx, 2)
	if err != nil || !equalIDs(passengerIDs(faithful), []string{"p1", "p2"}) {
		t.Errorf("faithful passengers: expected [p1 p2], got %v (err %v)", passengerIDs(faithful), err)
	}

	everyone, err := svc.FaithfulPassengers(ctx, 0)
	if err != nil || !equalIDs(passengerIDs(everyone), []string{"p1", "p2", "p3", "p4"}) {
		t.Errorf("faithful passengers(0): expected everyone, got %v (err %v)", passengerIDs(everyone), err)
	}

	frequent, err := svc.FrequentPassengers(ctx, "d1")
	if err != nil || !equalIDs(passengerIDs(frequent), []string{"p1", "p2"}) {
		t.Errorf("frequent passengers: expected [p1 p2], got %v (err %v)", passengerIDs(frequent), err)
	}

	smart, err := svc.SmartPassengers(ctx)
	if err != nil || !equalIDs(passengerIDs(smart), []string{"p1"}) {
		t.Errorf("smart passengers: expected [p1], got %v (err %v)", passengerIDs(smart), err)
	}

	period, err := svc.MostFrequentDurationPeriod(ctx)
	if err != nil || period == nil || *period != (domain.DurationPeriod{Start: 10, End: 19}) {
		t.Errorf("duration period: expected 10..19, got %v (err %v)", period, err)
	}

	pareto, err := svc.Pareto(ctx)
	if err != nil || !pareto.Holds || pareto.TopCount != 1 {
		t.Errorf("pareto: expected to hold with one top driver, got %+v (err %v)", pareto, err)
	}

	incomes, err := svc.DriverIncomes(ctx)
	if err != nil || len(incomes) != 3 || incomes[0].Driver.ID != "d1" || incomes[2].Income != 0 {
		t.Errorf("driver incomes: unexpected %+v (err %v)", incomes, err)
	}
}

func TestReportService_Validation(t *testing.T) {
	t.Parallel()

	svc := newLoadedService(t, newSampleRepository(), nil)
	ctx := context.Background()

	if _, err := svc.FaithfulPassengers(ctx, -1); !errors.Is(err, service.ErrInvalidMinTrips) {
		t.Errorf("expected ErrInvalidMinTrips, got %v", err)
	}
	if _, err := svc.Summary(ctx, -1); !errors.Is(err, service.ErrInvalidMinTrips) {
		t.Errorf("expected ErrInvalidMinTrips, got %v", err)
	}
	if _, err := svc.FrequentPassengers(ctx, ""); !errors.Is(err, service.ErrInvalidDriverID) {
		t.Errorf("expected ErrInvalidDriverID, got %v", err)
	}
	if _, err := svc.FrequentPassengers(ctx, "nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReportService_IdleDriverHasNoFrequentPassengers(t *testing.T) {
	t.Parallel()

	svc := newLoadedService(t, newSampleRepository(), nil)

	frequent, err := svc.FrequentPassengers(context.Background(), "d3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frequent) != 0 {
		t.Errorf("expected no passengers, got %v", passengerIDs(frequent))
	}
}

func TestReportService_EmptyPark(t *testing.T) {
	t.Parallel()

	repo := NewMockParkRepository()
	repo.AddDriver("d1")
	repo.AddPassenger("p1")
	svc := newLoadedService(t, repo, nil)
	ctx := context.Background()

	fake, _ := svc.FakeDrivers(ctx)
	if len(fake) != 1 || fake[0].ID != "d1" {
		t.Errorf("expected d1 to be fake, got %v", fake)
	}

	faithful, _ := svc.FaithfulPassengers(ctx, 1)
	if len(faithful) != 0 {
		t.Errorf("expected no faithful passengers, got %v", passengerIDs(faithful))
	}

	period, err := svc.MostFrequentDurationPeriod(ctx)
	if err != nil || period != nil {
		t.Errorf("expected no period, got %v (err %v)", period, err)
	}

	pareto, _ := svc.Pareto(ctx)
	if pareto.Holds {
		t.Error("expected pareto not to hold for an empty park")
	}
}

func TestReportService_ConcurrentQueriesDuringReload(t *testing.T) {
	t.Parallel()

	repo := newSampleRepository()
	svc := newLoadedService(t, repo, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := svc.Summary(ctx, 1); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.Reload(ctx); err != nil {
				t.Errorf("unexpected reload error: %v", err)
			}
		}()
	}
	wg.Wait()
}

// ──────────────────────────────────────────────
// REPORT CACHE
// ──────────────────────────────────────────────

func TestReportService_ServesRepeatedQueriesFromCache(t *testing.T) {
	t.Parallel()

	cache := NewMockReportCache()
	svc := newLoadedService(t, newSampleRepository(), cache)
	ctx := context.Background()

	first, err := svc.SmartPassengers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SmartPassengers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.SetCallCount != 1 {
		t.Errorf("expected one cache write, got %d", cache.SetCallCount)
	}
	if cache.HitCount != 1 {
		t.Errorf("expected one cache hit, got %d", cache.HitCount)
	}
	if !equalIDs(passengerIDs(first), passengerIDs(second)) {
		t.Errorf("cached result %v differs from computed %v", passengerIDs(second), passengerIDs(first))
	}
}

func TestReportService_CachesPerParameter(t *testing.T) {
	t.Parallel()

	cache := NewMockReportCache()
	svc := newLoadedService(t, newSampleRepository(), cache)
	ctx := context.Background()

	one, _ := svc.FaithfulPassengers(ctx, 1)
	two, _ := svc.FaithfulPassengers(ctx, 2)

	if len(one) == len(two) {
		t.Fatalf("expected different results for different min trips, got %v and %v", passengerIDs(one), passengerIDs(two))
	}
	if cache.Len() != 2 {
		t.Errorf("expected two cache entries, got %d", cache.Len())
	}
}

func TestReportService_CachedEmptyPeriodStaysEmpty(t *testing.T) {
	t.Parallel()

	repo := NewMockParkRepository()
	repo.AddDriver("d1")
	cache := NewMockReportCache()
	svc := newLoadedService(t, repo, cache)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		period, err := svc.MostFrequentDurationPeriod(ctx)
		if err != nil || period != nil {
			t.Fatalf("attempt %d: expected no period, got %v (err %v)", i, period, err)
		}
	}
}

func TestReportService_CacheErrorsFallBackToComputation(t *testing.T) {
	t.Parallel()

	cache := NewMockReportCache()
	cache.GetError = errors.New("redis down")
	cache.SetError = errors.New("redis down")
	svc := newLoadedService(t, newSampleRepository(), cache)

	pareto, err := svc.Pareto(context.Background())
	if err != nil {
		t.Fatalf("cache failures must not fail the query: %v", err)
	}
	if !pareto.Holds {
		t.Error("expected computed pareto result")
	}
}

func TestReportService_ReloadInvalidatesPreviousVersion(t *testing.T) {
	t.Parallel()

	cache := NewMockReportCache()
	svc := newLoadedService(t, newSampleRepository(), cache)
	ctx := context.Background()

	_, _ = svc.FakeDrivers(ctx)
	_, _ = svc.SmartPassengers(ctx)
	if cache.Len() != 2 {
		t.Fatalf("expected two cache entries, got %d", cache.Len())
	}

	if _, err := svc.Reload(ctx); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}

	if cache.InvalidateCallCount != 1 {
		t.Errorf("expected one invalidation, got %d", cache.InvalidateCallCount)
	}
	if cache.Len() != 0 {
		t.Errorf("expected stale entries to be removed, got %d", cache.Len())
	}
}
