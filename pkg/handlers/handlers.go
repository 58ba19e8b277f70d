// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// ErrorTimestampFormat is the layout used for timestamps in error envelopes.
const ErrorTimestampFormat = "2006-01-02 15:04:05"

// ErrorResponse is the uniform envelope returned for every failed request.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes the uniform error envelope carrying
// the status code, reason phrase, message, and request path. Server faults
// (5xx) are reported with a generic message prefix rather than raw internals.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status, "path", r.URL.Path)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "An unexpected error occurred: " + message
	}

	RespondJSON(w, status, ErrorResponse{
		Timestamp: time.Now().Format(ErrorTimestampFormat),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}
