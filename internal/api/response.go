package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/roman/pkg/logger"
	"github.com/dmitrymomot/roman/pkg/roman"
)

// Response is the JSON envelope for every API reply.
type Response struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to
// translated messages.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Conversion is the payload of a successful /convert call.
type Conversion struct {
	Input   string        `json:"input"`
	Numeral string        `json:"numeral"`
	Value   int           `json:"value"`
	Tokens  []roman.Token `json:"tokens"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorContext(r.Context(), "Failed to write response", logger.Error(err))
	}
}
