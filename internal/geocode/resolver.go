// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package geocode

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/nightroute/internal/cache"
	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/metrics"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/places"
)

// ErrNotFound is returned when no layer can resolve a name.
var ErrNotFound = errors.New("geocode: name not found")

// Lookup sources, also used as metric label values.
const (
	SourceMemory   = "memory"
	SourceStore    = "store"
	SourceProvider = "provider"
	SourceNotFound = "not_found"
	SourceError    = "error"
)

// MemoryCacheName labels the in-process layer's metrics.
const MemoryCacheName = "geocode"

// Searcher is the provider capability the resolver needs.
type Searcher interface {
	TextSearch(ctx context.Context, query string) ([]models.Venue, error)
}

// Resolver turns venue names into coordinates. Each lookup consults the
// in-process cache, then the durable store, then the provider. Provider
// answers are written back to the store asynchronously; the caller never
// waits on that write.
//
// Thread Safety: Safe for concurrent use. Concurrent lookups of the same
// name share one provider call.
type Resolver struct {
	memory           *cache.Cache[models.Coordinates]
	store            Store
	provider         Searcher
	concurrency      int
	lookupTimeout    time.Duration
	writebackTimeout time.Duration
	logger           zerolog.Logger

	group      singleflight.Group
	writebacks sync.WaitGroup
}

// NewResolver creates a resolver. store may be nil to run memory-only.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewResolver(cfg *config.GeocodeConfig, memory *cache.Cache[models.Coordinates], store Store, provider Searcher, logger zerolog.Logger) *Resolver {
	concurrency := cfg.Concurrency
	if concurrency < 1 || concurrency > config.MaxGeocodeConcurrency {
		concurrency = config.MaxGeocodeConcurrency
	}
	return &Resolver{
		memory:           memory,
		store:            store,
		provider:         provider,
		concurrency:      concurrency,
		lookupTimeout:    cfg.LookupTimeout,
		writebackTimeout: cfg.WritebackTimeout,
		logger:           logger.With().Str("component", "geocode").Logger(),
	}
}

// Resolve returns the coordinates for one name.
//
// The shared lookup is detached from ctx and bounded by the lookup timeout,
// so one caller giving up does not fail the others waiting on the same name.
// Each caller still returns as soon as its own ctx is done.
func (r *Resolver) Resolve(ctx context.Context, name string) (models.Coordinates, error) {
	key := NormalizeName(name)
	if key == "" {
		return models.Coordinates{}, ErrNotFound
	}

	if coords, ok := r.memory.Get(key); ok {
		metrics.RecordGeocodeLookup(SourceMemory)
		return coords, nil
	}

	ch := r.group.DoChan(key, func() (interface{}, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.lookupTimeout)
		defer cancel()
		return r.resolveSlow(lctx, key)
	})

	select {
	case <-ctx.Done():
		return models.Coordinates{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return models.Coordinates{}, res.Err
		}
		return res.Val.(models.Coordinates), nil
	}
}

// resolveSlow consults the durable store and then the provider.
func (r *Resolver) resolveSlow(ctx context.Context, key string) (models.Coordinates, error) {
	if r.store != nil {
		coords, err := r.store.Get(ctx, key)
		switch {
		case err == nil:
			r.memory.Set(key, coords)
			metrics.RecordGeocodeLookup(SourceStore)
			return coords, nil
		case !errors.Is(err, ErrNotFound):
			r.requestLogger(ctx).Warn().Err(err).Str("name", key).Msg("Geocode store read failed, asking provider")
		}
	}

	venues, err := r.provider.TextSearch(ctx, key)
	if err != nil {
		if errors.Is(err, places.ErrNoResults) {
			metrics.RecordGeocodeLookup(SourceNotFound)
			return models.Coordinates{}, ErrNotFound
		}
		metrics.RecordGeocodeLookup(SourceError)
		return models.Coordinates{}, fmt.Errorf("resolve %q: %w", key, err)
	}

	for i := range venues {
		if loc := venues[i].Location; loc != nil && loc.Valid() {
			coords := *loc
			r.memory.Set(key, coords)
			r.writeback(key, coords)
			metrics.RecordGeocodeLookup(SourceProvider)
			return coords, nil
		}
	}

	metrics.RecordGeocodeLookup(SourceNotFound)
	return models.Coordinates{}, ErrNotFound
}

// writeback stores a provider answer in the background.
func (r *Resolver) writeback(key string, coords models.Coordinates) {
	if r.store == nil {
		return
	}
	r.writebacks.Add(1)
	go func() {
		defer r.writebacks.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.writebackTimeout)
		defer cancel()

		if err := r.store.Put(ctx, key, coords); err != nil {
			metrics.GeocodeWritebackErrors.Inc()
			r.logger.Warn().Err(err).Str("name", key).Msg("Geocode writeback failed")
		}
	}()
}

// ResolveBatch resolves many names with at most the configured number of
// provider lookups in flight. Names that fail are omitted from the result;
// one failure never aborts the batch. Result keys are the names as given.
func (r *Resolver) ResolveBatch(ctx context.Context, names []string) map[string]models.Coordinates {
	result := make(map[string]models.Coordinates, len(names))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		g.Go(func() error {
			coords, err := r.Resolve(gctx, name)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					r.requestLogger(ctx).Debug().Err(err).Str("name", name).Msg("Geocode lookup failed")
				}
				return nil
			}
			mu.Lock()
			result[name] = coords
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	return result
}

// requestLogger adds the request ID carried by ctx to the resolver logger.
func (r *Resolver) requestLogger(ctx context.Context) *zerolog.Logger {
	logger := r.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logger = logger.With().Str("request_id", id).Logger()
	}
	return &logger
}

// Wait blocks until pending writebacks finish. Call it before closing the store.
func (r *Resolver) Wait() {
	r.writebacks.Wait()
}
