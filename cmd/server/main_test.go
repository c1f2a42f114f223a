package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saree-store/backend/internal/config"
	"github.com/saree-store/backend/internal/handlers"
	"github.com/saree-store/backend/internal/repository"
	"github.com/saree-store/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	log := logger.New("error")

	t.Run("no url", func(t *testing.T) {
		store, err := openStore(context.Background(), config.DatabaseConfig{Name: "saree_store", ConnectTimeout: 1}, log)
		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("memory", func(t *testing.T) {
		store, err := openStore(context.Background(), config.DatabaseConfig{URL: "memory://", Name: "saree_store", ConnectTimeout: 1}, log)
		require.NoError(t, err)
		assert.IsType(t, &repository.MemoryStore{}, store)
	})

	t.Run("invalid url", func(t *testing.T) {
		store, err := openStore(context.Background(), config.DatabaseConfig{URL: "not-a-mongo-uri", Name: "saree_store", ConnectTimeout: 1}, log)
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestOpenStore_UnreachableDatabaseStillStarts(t *testing.T) {
	log := logger.New("error")
	cfg := config.DatabaseConfig{
		URL:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
		Name:           "saree_store",
		ConnectTimeout: 2,
	}

	store, err := openStore(context.Background(), cfg, log)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		_ = store.Close(context.Background())
	}()

	h := handlers.NewDiagnosticsHandler(store, cfg.Configured(), log)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.DiagnosticsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, strings.HasPrefix(resp.Database, "⚠️  Connected but Error: server selection error"), resp.Database)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
}
