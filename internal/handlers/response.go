package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/saree-store/backend/internal/validation"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response as {"detail": message}
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"detail": message}, logger)
}

// WriteValidationError writes a 422 response listing every rejected field
func WriteValidationError(w http.ResponseWriter, errs validation.Errors, logger *slog.Logger) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"detail": errs}, logger)
}
