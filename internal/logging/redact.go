// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package logging

import (
	"net/url"
	"strings"
)

// sensitiveKeys are parameter names whose values never reach a log line.
var sensitiveKeys = map[string]bool{
	"key":           true,
	"api_key":       true,
	"apikey":        true,
	"token":         true,
	"access_token":  true,
	"secret":        true,
	"password":      true,
	"authorization": true,
	"signature":     true,
}

// SanitizeToken masks a secret, showing only first and last 4 characters.
// Example: "AIzaSyA1234567890abcdef" -> "AIza...cdef"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeValue masks a value when its key name is sensitive.
func SanitizeValue(key, value string) string {
	if sensitiveKeys[strings.ToLower(key)] {
		return SanitizeToken(value)
	}
	return value
}

// SanitizeURL masks sensitive query parameters in a URL string.
// Unparseable input is truncated rather than returned verbatim.
//
//	logging.SanitizeURL("https://maps.example.com/json?query=tacos&key=AIzaSyA1234567890abcdef")
//	// https://maps.example.com/json?key=AIza...cdef&query=tacos
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return truncateString(raw, 32)
	}
	q := u.Query()
	if len(q) == 0 {
		return raw
	}
	for k, vs := range q {
		for i, v := range vs {
			vs[i] = SanitizeValue(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// SanitizeError replaces every occurrence of secret in err's message.
// Transport errors embed the request URL, which carries the API key.
func SanitizeError(err error, secret string) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, secret, SanitizeToken(secret))
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
