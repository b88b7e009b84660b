// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/metrics"
	"github.com/tomtom215/nightroute/internal/models"
)

// BreakerName labels the provider circuit breaker in logs and metrics.
const BreakerName = "places-api"

// BreakerClient wraps a Provider with a circuit breaker so a failing provider
// is not hammered by every map refresh.
//
// ErrNoResults and caller cancellation count as successes: they say nothing
// about provider health.
type BreakerClient struct {
	next   Provider
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
	logger zerolog.Logger
}

// NewBreakerClient wraps next. The breaker opens when the failure ratio
// reaches cfg.FailureRatio over at least cfg.MinRequests calls in one
// cfg.Interval window, and probes again after cfg.Timeout.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerClient(next Provider, cfg *config.BreakerConfig, logger zerolog.Logger) *BreakerClient {
	logger = logger.With().Str("component", "places").Str("breaker", BreakerName).Logger()

	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("Opening provider circuit")
			}
			return shouldTrip
		},

		IsSuccessful: isHealthy,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)

			event := logger.Info()
			if to == gobreaker.StateOpen {
				event = logger.Warn()
			}
			event.Str("from", fromStr).Str("to", toStr).Msg("Provider circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerClient{
		next:   next,
		cb:     cb,
		name:   BreakerName,
		logger: logger,
	}
}

// State returns the current breaker state name.
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

// execute runs fn through the breaker. Rejections are reported as ErrUnavailable.
func (b *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			b.logger.Debug().Err(err).Msg("Provider request rejected by circuit")
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if !isHealthy(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
			return nil, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// isHealthy reports whether err leaves the provider's health untouched.
func isHealthy(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNoResults) ||
		errors.Is(err, context.Canceled)
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// NearbySearch calls the wrapped provider with circuit breaker protection.
func (b *BreakerClient) NearbySearch(ctx context.Context, center models.Coordinates, radiusMeters int, placeType string) ([]models.Venue, error) {
	return castResult[[]models.Venue](b.execute(func() (interface{}, error) {
		return b.next.NearbySearch(ctx, center, radiusMeters, placeType)
	}))
}

// TextSearch calls the wrapped provider with circuit breaker protection.
func (b *BreakerClient) TextSearch(ctx context.Context, query string) ([]models.Venue, error) {
	return castResult[[]models.Venue](b.execute(func() (interface{}, error) {
		return b.next.TextSearch(ctx, query)
	}))
}

// Directions calls the wrapped provider with circuit breaker protection.
func (b *BreakerClient) Directions(ctx context.Context, origin, destination models.Coordinates) (*models.Directions, error) {
	return castResult[*models.Directions](b.execute(func() (interface{}, error) {
		return b.next.Directions(ctx, origin, destination)
	}))
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
