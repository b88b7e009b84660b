// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/nightroute/internal/config"
	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/metrics"
	"github.com/tomtom215/nightroute/internal/models"
)

var (
	// ErrNoResults is returned when the provider answers ZERO_RESULTS.
	ErrNoResults = errors.New("places: no results")

	// ErrUnavailable is returned when the provider cannot be reached, rejects
	// the request, or answers with a non-OK status.
	ErrUnavailable = errors.New("places: provider unavailable")
)

// Endpoint labels, also used as metric label values.
const (
	EndpointNearby     = "nearby"
	EndpointText       = "text"
	EndpointDirections = "directions"
)

const (
	nearbyPath     = "/maps/api/place/nearbysearch/json"
	textPath       = "/maps/api/place/textsearch/json"
	directionsPath = "/maps/api/directions/json"
)

// maxErrorBodySize limits how much of a failed response is read for diagnostics.
const maxErrorBodySize = 64 * 1024

// Provider is the venue and directions source consumed by the application.
// Client, BreakerClient and CachingClient all implement it.
type Provider interface {
	NearbySearch(ctx context.Context, center models.Coordinates, radiusMeters int, placeType string) ([]models.Venue, error)
	TextSearch(ctx context.Context, query string) ([]models.Venue, error)
	Directions(ctx context.Context, origin, destination models.Coordinates) (*models.Directions, error)
}

// Client talks to a places provider over its JSON HTTP API.
//
// Outbound calls pass through a token-bucket limiter so a burst of map
// requests cannot exhaust the provider quota. HTTP 429 answers are retried
// with exponential backoff.
//
// Thread Safety: Safe for concurrent use.
type Client struct {
	baseURL        string
	apiKey         string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	logger         zerolog.Logger
}

// NewClient creates a provider client from configuration.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(cfg *config.PlacesConfig, logger zerolog.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(limit, burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		logger:         logger.With().Str("component", "places").Logger(),
	}
}

// NearbySearch lists places of placeType within radiusMeters of center.
// An empty placeType searches all types.
func (c *Client) NearbySearch(ctx context.Context, center models.Coordinates, radiusMeters int, placeType string) ([]models.Venue, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(center))
	params.Set("radius", strconv.Itoa(radiusMeters))
	if placeType != "" {
		params.Set("type", placeType)
	}

	var resp searchResponse
	if err := c.get(ctx, EndpointNearby, nearbyPath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(EndpointNearby, resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	return toVenues(resp.Results), nil
}

// TextSearch finds places matching a free-text query such as a venue name.
func (c *Client) TextSearch(ctx context.Context, query string) ([]models.Venue, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.get(ctx, EndpointText, textPath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(EndpointText, resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	return toVenues(resp.Results), nil
}

// Directions returns walking directions between two points.
func (c *Client) Directions(ctx context.Context, origin, destination models.Coordinates) (*models.Directions, error) {
	params := url.Values{}
	params.Set("origin", formatLatLng(origin))
	params.Set("destination", formatLatLng(destination))
	params.Set("mode", "walking")

	var resp directionsResponse
	if err := c.get(ctx, EndpointDirections, directionsPath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(EndpointDirections, resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	d := resp.toDirections()
	if d == nil {
		return nil, fmt.Errorf("%s: empty route: %w", EndpointDirections, ErrNoResults)
	}
	return d, nil
}

// get performs a rate-limited GET and decodes the JSON body into result.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, result interface{}) error {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.RecordProviderRequest(endpoint, status, time.Since(start))
	}()

	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	resp, err := c.doRequestWithRetry(ctx, reqURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s request failed: %s: %w", endpoint, logging.SanitizeError(err, c.apiKey), ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		status = strconv.Itoa(resp.StatusCode)
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%s request failed with status %d: %s: %w", endpoint, resp.StatusCode, body, ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		status = "decode_error"
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	status = "ok"
	return nil
}

// doRequestWithRetry waits for the limiter, then retries HTTP 429 answers
// with exponential backoff, honoring Retry-After when present.
func (c *Client) doRequestWithRetry(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		c.logger.Debug().
			Str("url", logging.SanitizeURL(reqURL)).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Provider rate limited request, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// checkStatus maps provider status values onto errors.
func checkStatus(endpoint, status, message string) error {
	switch status {
	case StatusOK:
		return nil
	case StatusZeroResults:
		return fmt.Errorf("%s: %w", endpoint, ErrNoResults)
	default:
		if message != "" {
			return fmt.Errorf("%s: status %s: %s: %w", endpoint, status, message, ErrUnavailable)
		}
		return fmt.Errorf("%s: status %s: %w", endpoint, status, ErrUnavailable)
	}
}

func toVenues(results []placeResult) []models.Venue {
	venues := make([]models.Venue, 0, len(results))
	for i := range results {
		venues = append(venues, results[i].toVenue())
	}
	return venues
}

func formatLatLng(c models.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}

// readBodyForError reads at most maxErrorBodySize bytes of a failed response.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return string(body)
}
