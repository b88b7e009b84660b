// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nightroute/internal/logging"
	"github.com/tomtom215/nightroute/internal/models"
	"github.com/tomtom215/nightroute/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess sends a success envelope. start is when handling began.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: metadata(r, start),
	})
}

// respondEmpty sends a success envelope with null data and a hint for the user.
func respondEmpty(w http.ResponseWriter, r *http.Request, message string, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     nil,
		Message:  message,
		Metadata: metadata(r, start),
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		// Sanitize error output to prevent log injection attacks
		logging.CtxWarn(r.Context()).
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: metadata(r, time.Time{}),
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends a prepared APIError, typically from validation.
func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: metadata(r, time.Time{}),
		Error:    apiErr,
	})
}

func metadata(r *http.Request, start time.Time) models.Metadata {
	md := models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if !start.IsZero() {
		md.QueryTimeMS = time.Since(start).Milliseconds()
	}
	return md
}

// normalizer is implemented by request bodies that fill derived defaults
// between decoding and validation.
type normalizer interface {
	normalize()
}

// decodeAndValidate decodes a JSON body into v and validates it. On failure
// the error response has already been written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	// Read first so a body over the MaxBytesReader cap surfaces as *http.MaxBytesError
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodeBodyTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit), err)
			return false
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "Failed to read request body", err)
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "Request body is empty", nil)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "Request body is not valid JSON", err)
		return false
	}

	if n, ok := v.(normalizer); ok {
		n.normalize()
	}

	if verr := validation.ValidateStruct(v); verr != nil {
		respondAPIError(w, r, http.StatusBadRequest, verr.ToAPIError())
		return false
	}
	return true
}
