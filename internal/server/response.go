package server

import (
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// writeJSON writes data inside an Envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any, logger hclog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: status < 400,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes an error Envelope with the given status code.
func writeError(w http.ResponseWriter, status int, message string, logger hclog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: false,
		Error:   message,
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}

func success(w http.ResponseWriter, data any, logger hclog.Logger) {
	writeJSON(w, http.StatusOK, data, logger)
}

func badRequest(w http.ResponseWriter, message string, logger hclog.Logger) {
	writeError(w, http.StatusBadRequest, message, logger)
}

func tooManyRequests(w http.ResponseWriter, message string, logger hclog.Logger) {
	writeError(w, http.StatusTooManyRequests, message, logger)
}
