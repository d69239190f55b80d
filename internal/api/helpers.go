// What to Watch - Deterministic Movie Deck Recommendations
// Copyright 2026 GlenTheReb
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/GlenTheReb/what-to-watch

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/GlenTheReb/what-to-watch/internal/logging"
	"github.com/GlenTheReb/what-to-watch/internal/models"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

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

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Err(err).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// parseIDList parses string-encoded movie IDs, dropping anything that
// is not a plain integer. Browser clients serialize IDs as strings.
func parseIDList(values []string) []int {
	if len(values) == 0 {
		return nil
	}

	result := make([]int, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if id, err := strconv.Atoi(trimmed); err == nil {
			result = append(result, id)
		}
	}
	return result
}
