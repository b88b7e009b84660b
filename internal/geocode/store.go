// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/models"
)

// Key prefix for BadgerDB storage
const coordKeyPrefix = "geocode:"

// Store is the durable name-to-coordinate layer.
type Store interface {
	// Get returns ErrNotFound when the name is absent or expired.
	Get(ctx context.Context, name string) (models.Coordinates, error)
	Put(ctx context.Context, name string, coords models.Coordinates) error
}

// storedCoordinates is the badger value.
type storedCoordinates struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// BadgerStore implements Store using BadgerDB. Entries carry a badger TTL,
// so expired names disappear without a sweep.
type BadgerStore struct {
	db             *badger.DB
	ttl            time.Duration
	gcInterval     time.Duration
	gcDiscardRatio float64
	logger         zerolog.Logger
	now            func() time.Time
}

// OpenBadgerStore opens (or creates) the store described by cfg.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func OpenBadgerStore(cfg *config.GeocodeConfig, logger zerolog.Logger) (*BadgerStore, error) {
	logger = logger.With().Str("component", "geocode").Logger()

	opts := badger.DefaultOptions(cfg.StorePath)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = badgerLogger{logger: logger}
	// Coordinates are tiny; the default 1GB value log file is wasteful
	opts.ValueLogFileSize = 16 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for geocode store: %w", err)
	}

	s := NewBadgerStoreFromDB(db, cfg.StoreTTL, logger)
	s.gcInterval = cfg.GCInterval
	s.gcDiscardRatio = cfg.GCDiscardRatio
	return s, nil
}

// NewBadgerStoreFromDB wraps an already open database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadgerStoreFromDB(db *badger.DB, ttl time.Duration, logger zerolog.Logger) *BadgerStore {
	return &BadgerStore{
		db:             db,
		ttl:            ttl,
		gcInterval:     10 * time.Minute,
		gcDiscardRatio: 0.5,
		logger:         logger,
		now:            time.Now,
	}
}

// Get retrieves the coordinates stored for name.
func (s *BadgerStore) Get(ctx context.Context, name string) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}

	var stored storedCoordinates
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get coordinates: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if err != nil {
		return models.Coordinates{}, err
	}
	return models.Coordinates{Lat: stored.Lat, Lng: stored.Lng}, nil
}

// Put stores coordinates for name with the store TTL.
func (s *BadgerStore) Put(ctx context.Context, name string, coords models.Coordinates) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(storedCoordinates{Lat: coords.Lat, Lng: coords.Lng, ResolvedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal coordinates: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(storeKey(name), data)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Count returns the number of live entries.
func (s *BadgerStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(coordKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// RunGC runs BadgerDB value log garbage collection once.
// badger.ErrNoRewrite means there was nothing to reclaim.
func (s *BadgerStore) RunGC() error {
	err := s.db.RunValueLogGC(s.gcDiscardRatio)
	if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

// Serve runs value log garbage collection every gc interval until ctx is
// done. It implements suture.Service.
func (s *BadgerStore) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("Geocode store garbage collection failed")
			}
		}
	}
}

// String returns the service name for supervisor logs.
func (s *BadgerStore) String() string {
	return "geocode-store-gc"
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// storeKey builds the badger key for a normalized name.
func storeKey(name string) []byte {
	return []byte(coordKeyPrefix + NormalizeName(name))
}

// NormalizeName folds case and whitespace so "Joe's  Pub" and "joe's pub"
// share one entry.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// badgerLogger routes badger's internal logs through zerolog.
// Info and debug output is demoted to debug to keep startup quiet.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), args...)
}

// Compile-time interface assertions
var (
	_ Store         = (*BadgerStore)(nil)
	_ badger.Logger = badgerLogger{}
)
