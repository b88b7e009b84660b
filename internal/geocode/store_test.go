// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/models"
)

// createTestStore opens an in-memory badger store.
func createTestStore(t *testing.T, ttl time.Duration) *BadgerStore {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("Failed to open BadgerDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerStoreFromDB(db, ttl, zerolog.Nop())
}

func TestBadgerStore_PutGet(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx := context.Background()
	want := models.Coordinates{Lat: 40.7261, Lng: -73.9839}

	if err := s.Put(ctx, "Taqueria Uno", want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	for _, name := range []string{"Taqueria Uno", "taqueria uno", "  TAQUERIA   UNO "} {
		got, err := s.Get(ctx, name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		if got != want {
			t.Errorf("Get(%q) = %v, want %v", name, got, want)
		}
	}

	if n, err := s.Count(); err != nil || n != 1 {
		t.Errorf("Count() = %d, %v, want 1", n, err)
	}
}

func TestBadgerStore_NotFound(t *testing.T) {
	s := createTestStore(t, time.Hour)
	_, err := s.Get(context.Background(), "nowhere")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestBadgerStore_Overwrite(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx := context.Background()
	_ = s.Put(ctx, "a", models.Coordinates{Lat: 1, Lng: 1})
	_ = s.Put(ctx, "a", models.Coordinates{Lat: 2, Lng: 2})

	got, err := s.Get(ctx, "a")
	if err != nil || got.Lat != 2 {
		t.Errorf("Get() = %v, %v, want lat 2", got, err)
	}
}

func TestBadgerStore_CanceledContext(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Put(ctx, "a", models.Coordinates{Lat: 1, Lng: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("Put() error = %v, want context.Canceled", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}

func TestBadgerStore_RunGCInMemory(t *testing.T) {
	s := createTestStore(t, time.Hour)
	if err := s.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v, want nil for in-memory store", err)
	}
}

func TestOpenBadgerStore(t *testing.T) {
	cfg := config.Default().Geocode
	cfg.StorePath = t.TempDir()

	s, err := OpenBadgerStore(&cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Put(ctx, "disk", models.Coordinates{Lat: 3, Lng: 4}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if got, err := s.Get(ctx, "disk"); err != nil || got.Lng != 4 {
		t.Errorf("Get() = %v, %v", got, err)
	}
}

func TestBadgerStore_ServeStopsOnCancel(t *testing.T) {
	s := createTestStore(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Joe's Pub", "joe's pub"},
		{"  Joe's   Pub\t", "joe's pub"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
