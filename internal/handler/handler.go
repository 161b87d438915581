// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sectionconnection/users-api/internal/handler/dto"
)

// Client-facing messages. Internal error detail never appears in a response.
const (
	MsgMethodNotAllowed = "Method not allowed."
	MsgNotFound         = "Resource not found."
	MsgConnectionFailed = "Database connection failed."
	MsgMissingFields    = "Missing username or email."
	MsgRetrieveFailed   = "Failed to retrieve data."
	MsgAddFailed        = "Failed to add user."
	MsgUserAdded        = "User added successfully."
	MsgBodyTooLarge     = "Request body too large."
)

// Handler serves the router-level fallbacks.
type Handler struct {
	logger *slog.Logger
}

// New creates a new Handler instance.
func New(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusNotFound, dto.Error(MsgNotFound))
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusMethodNotAllowed, dto.Error(MsgMethodNotAllowed))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "status", status, "error", err)
	}
}
