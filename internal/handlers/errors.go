package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body shape shared by all endpoints: a list
// of human-readable messages.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error messages
	Errors []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrors(w http.ResponseWriter, status int, msgs ...string) {
	writeJSON(w, status, ErrorResponse{Errors: msgs})
}

// Shared user-facing messages.
const (
	msgInvalidBody   = "Invalid request body."
	msgInvalidID     = "Invalid id."
	msgInternalError = "Internal server error, please try again later."
)
