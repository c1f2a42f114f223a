package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/saree-store/backend/internal/repository"
)

const (
	maxCollections   = 10
	maxErrorRunes    = 50
	diagnosticsProbe = 5 * time.Second
)

// Database states reported by /test
const (
	DatabaseNotAvailable   = "❌ Not Available"
	DatabaseUninitialized  = "⚠️  Available but not initialized"
	DatabaseAvailable      = "✅ Available"
	DatabaseWorking        = "✅ Connected & Working"
	databaseErrorPrefix    = "⚠️  Connected but Error: "
	diagnosticsErrorPrefix = "❌ Error: "
)

// DiagnosticsResponse is the body of GET /test
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsHandler reports backend liveness and probes the document store
type DiagnosticsHandler struct {
	probe          repository.DatabaseProbe
	databaseURLSet bool
	logger         *slog.Logger
}

// NewDiagnosticsHandler creates a diagnostics handler. probe may be nil when
// no store is configured.
func NewDiagnosticsHandler(probe repository.DatabaseProbe, databaseURLSet bool, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		probe:          probe,
		databaseURLSet: databaseURLSet,
		logger:         logger,
	}
}

// ServeHTTP handles GET /test. Failures are reported in the body; the status is always 200.
func (h *DiagnosticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), diagnosticsProbe)
	defer cancel()

	WriteJSON(w, http.StatusOK, h.diagnose(ctx), h.logger)
}

func (h *DiagnosticsHandler) diagnose(ctx context.Context) (resp DiagnosticsResponse) {
	resp = DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         DatabaseNotAvailable,
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("database diagnostics panicked", "panic", rec)
			resp.Database = diagnosticsErrorPrefix + truncate(fmt.Sprint(rec), maxErrorRunes)
		}
	}()

	if h.probe == nil {
		resp.Database = DatabaseUninitialized
		return resp
	}

	urlStatus := "❌ Not Set"
	if h.databaseURLSet {
		urlStatus = "✅ Set"
	}
	name := h.probe.Name()
	if name == "" {
		name = "✅ Connected"
	}

	resp.Database = DatabaseAvailable
	resp.DatabaseURL = &urlStatus
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	names, err := h.probe.ListCollectionNames(ctx)
	if err != nil {
		h.logger.Warn("database probe failed", "error", err)
		resp.Database = databaseErrorPrefix + truncate(err.Error(), maxErrorRunes)
		return resp
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = DatabaseWorking
	return resp
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
