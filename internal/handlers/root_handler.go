package handlers

import (
	"log/slog"
	"net/http"
)

// RootHandler serves the static liveness messages
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(logger *slog.Logger) *RootHandler {
	return &RootHandler{logger: logger}
}

// Index handles GET /
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Saree Store API is running"}, h.logger)
}

// Hello handles GET /api/hello
func (h *RootHandler) Hello(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"}, h.logger)
}
