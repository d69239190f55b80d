// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

// Package models defines the wire types shared between the HTTP layer
// and clients: the response envelope and the deck request body.
package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses, with metadata for observability.
//
// Status field values:
//   - "success": Request completed, see Data field
//   - "error": Request failed, see Error field for details
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Timestamp is the server time when the response was generated
// (RFC3339). QueryTimeMS is the end-to-end deck build time in
// milliseconds, zero for fixed-cost endpoints.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - UPSTREAM_ERROR: the movie catalog could not be reached
//   - INTERNAL_ERROR: unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes used across handlers.
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeUpstream   = "UPSTREAM_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// DeckRequest is the request body accepted by POST /api/v1/deck.
// Every field is optional: a missing or malformed body falls back to
// an empty query with no feedback, which still yields a valid deck.
//
// KeptIDs and PassedIDs carry movie IDs as strings because browser
// clients routinely serialize numeric IDs that way; the handler parses
// them and drops anything non-numeric.
type DeckRequest struct {
	Query     string   `json:"query"`
	SessionID string   `json:"session_id"`
	Reroll    int      `json:"reroll"`
	KeptIDs   []string `json:"kept_ids"`
	PassedIDs []string `json:"passed_ids"`
}

// NewSuccessResponse builds a success envelope around data.
func NewSuccessResponse(data interface{}, queryTime time.Duration) APIResponse {
	return APIResponse{
		Status: "success",
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: queryTime.Milliseconds(),
		},
	}
}

// NewErrorResponse builds an error envelope with the given code and message.
func NewErrorResponse(code, message string) APIResponse {
	return APIResponse{
		Status: "error",
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	}
}
