// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package geocode

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/nightroute/internal/cache"
	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/metrics"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/places"
)

// fakeSearcher answers text searches from a table and tracks concurrency.
type fakeSearcher struct {
	mu       sync.Mutex
	answers  map[string][]models.Venue
	errs     map[string]error
	calls    map[string]int
	delay    time.Duration
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		answers: make(map[string][]models.Venue),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (f *fakeSearcher) add(name string, lat, lng float64) {
	f.answers[NormalizeName(name)] = []models.Venue{{
		ID:       "id-" + name,
		Name:     name,
		Location: &models.Coordinates{Lat: lat, Lng: lng},
	}}
}

func (f *fakeSearcher) TextSearch(ctx context.Context, query string) ([]models.Venue, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[query]++
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	if v, ok := f.answers[query]; ok {
		return v, nil
	}
	return nil, places.ErrNoResults
}

func (f *fakeSearcher) callCount(query string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[NormalizeName(query)]
}

func newTestResolver(t *testing.T, store Store, searcher Searcher, concurrency int) *Resolver {
	t.Helper()
	cfg := config.Default().Geocode
	cfg.Concurrency = concurrency
	memory := cache.New[models.Coordinates]("test_geocode", time.Hour, 100)
	return NewResolver(&cfg, memory, store, searcher, zerolog.Nop())
}

func TestResolver_LayerOrder(t *testing.T) {
	store := createTestStore(t, time.Hour)
	searcher := newFakeSearcher()
	searcher.add("Taqueria Uno", 40.7261, -73.9839)
	ctx := context.Background()

	provider := metrics.GeocodeLookups.WithLabelValues(SourceProvider)
	memory := metrics.GeocodeLookups.WithLabelValues(SourceMemory)
	stored := metrics.GeocodeLookups.WithLabelValues(SourceStore)
	p0, m0, s0 := testutil.ToFloat64(provider), testutil.ToFloat64(memory), testutil.ToFloat64(stored)

	r := newTestResolver(t, store, searcher, 10)

	// 1. provider
	got, err := r.Resolve(ctx, "Taqueria Uno")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Lat != 40.7261 {
		t.Errorf("Resolve() = %v", got)
	}
	r.Wait()

	// 2. memory
	if _, err := r.Resolve(ctx, "taqueria  uno"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if searcher.callCount("Taqueria Uno") != 1 {
		t.Errorf("provider calls = %d, want 1", searcher.callCount("Taqueria Uno"))
	}

	// 3. durable store, seen by a fresh resolver with an empty memory layer
	r2 := newTestResolver(t, store, searcher, 10)
	got, err = r2.Resolve(ctx, "Taqueria Uno")
	if err != nil || got.Lng != -73.9839 {
		t.Fatalf("Resolve() from store = %v, %v", got, err)
	}
	if searcher.callCount("Taqueria Uno") != 1 {
		t.Errorf("provider calls = %d, want 1 after store hit", searcher.callCount("Taqueria Uno"))
	}

	if d := testutil.ToFloat64(provider) - p0; d != 1 {
		t.Errorf("provider lookups delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(memory) - m0; d != 1 {
		t.Errorf("memory lookups delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(stored) - s0; d != 1 {
		t.Errorf("store lookups delta = %v, want 1", d)
	}
}

func TestResolver_NotFound(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.answers["no location"] = []models.Venue{{ID: "x", Name: "No Location"}}
	r := newTestResolver(t, nil, searcher, 10)

	tests := []string{"unknown place", "No Location", "", "   "}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), name)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrNotFound", name, err)
			}
		})
	}
}

func TestResolver_ProviderErrorIsNotNotFound(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.errs["flaky"] = places.ErrUnavailable
	r := newTestResolver(t, nil, searcher, 10)

	_, err := r.Resolve(context.Background(), "flaky")
	if !errors.Is(err, places.ErrUnavailable) {
		t.Errorf("Resolve() error = %v, want ErrUnavailable", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("provider failure reported as ErrNotFound")
	}
}

func TestResolver_ResolveBatch(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.delay = 5 * time.Millisecond
	names := make([]string, 0, 30)
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("Venue %d", i)
		searcher.add(name, 40.7+float64(i)/1000, -73.98)
		names = append(names, name)
	}
	names = append(names, "Venue 3", "Missing One")
	searcher.errs["broken"] = places.ErrUnavailable
	names = append(names, "broken")

	r := newTestResolver(t, nil, searcher, 4)
	got := r.ResolveBatch(context.Background(), names)

	if len(got) != 25 {
		t.Errorf("len(result) = %d, want 25", len(got))
	}
	if _, ok := got["Missing One"]; ok {
		t.Error("unresolvable name present in result")
	}
	if _, ok := got["broken"]; ok {
		t.Error("failed name present in result")
	}
	if c := got["Venue 7"]; math.Abs(c.Lat-40.707) > 1e-9 {
		t.Errorf("Venue 7 = %v", c)
	}
	if m := searcher.maxSeen.Load(); m > 4 {
		t.Errorf("max concurrent provider calls = %d, want <= 4", m)
	}
	if searcher.callCount("Venue 3") != 1 {
		t.Errorf("duplicate name resolved %d times", searcher.callCount("Venue 3"))
	}
}

func TestResolver_CanceledCallerDoesNotFailSharedLookup(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.delay = 200 * time.Millisecond
	searcher.add("Blue Note", 40.7308, -74.0007)
	r := newTestResolver(t, nil, searcher, 10)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := r.Resolve(firstCtx, "Blue Note")
		firstErr <- err
	}()

	deadline := time.Now().Add(time.Second)
	for searcher.inFlight.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("provider lookup never started")
		}
		time.Sleep(time.Millisecond)
	}

	type result struct {
		coords models.Coordinates
		err    error
	}
	second := make(chan result, 1)
	go func() {
		c, err := r.Resolve(context.Background(), "Blue Note")
		second <- result{c, err}
	}()

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Errorf("canceled caller error = %v, want context.Canceled", err)
	}

	got := <-second
	if got.err != nil {
		t.Fatalf("waiting caller error = %v, want success", got.err)
	}
	if got.coords.Lat != 40.7308 || got.coords.Lng != -74.0007 {
		t.Errorf("waiting caller coords = %v", got.coords)
	}
	if n := searcher.callCount("Blue Note"); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}
}

func TestResolver_LookupTimeoutBoundsSharedLookup(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.delay = time.Second
	searcher.add("Slow Bar", 40.72, -73.99)

	cfg := config.Default().Geocode
	cfg.LookupTimeout = 20 * time.Millisecond
	memory := cache.New[models.Coordinates]("test_geocode", time.Hour, 100)
	r := NewResolver(&cfg, memory, nil, searcher, zerolog.Nop())

	start := time.Now()
	_, err := r.Resolve(context.Background(), "Slow Bar")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Resolve() error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Resolve() took %v, want it bounded by the lookup timeout", elapsed)
	}
}

func TestResolver_ConcurrencyClampedToTen(t *testing.T) {
	searcher := newFakeSearcher()
	r := newTestResolver(t, nil, searcher, 50)
	if r.concurrency != config.MaxGeocodeConcurrency {
		t.Errorf("concurrency = %d, want %d", r.concurrency, config.MaxGeocodeConcurrency)
	}
}

// failingStore always fails writes.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (models.Coordinates, error) {
	return models.Coordinates{}, ErrNotFound
}

func (failingStore) Put(context.Context, string, models.Coordinates) error {
	return errors.New("disk full")
}

func TestResolver_WritebackFailureDoesNotFailLookup(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.add("Somewhere", 1, 2)
	r := newTestResolver(t, failingStore{}, searcher, 10)

	before := testutil.ToFloat64(metrics.GeocodeWritebackErrors)
	got, err := r.Resolve(context.Background(), "Somewhere")
	if err != nil || got.Lat != 1 {
		t.Fatalf("Resolve() = %v, %v", got, err)
	}
	r.Wait()
	if d := testutil.ToFloat64(metrics.GeocodeWritebackErrors) - before; d != 1 {
		t.Errorf("writeback errors delta = %v, want 1", d)
	}
}
