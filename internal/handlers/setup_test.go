package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saree-store/backend/internal/repository"
	"github.com/saree-store/backend/internal/service"
	"github.com/saree-store/backend/internal/validation"
	"github.com/saree-store/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full router on top of store, which may be nil
func newTestRouter(store repository.Store) http.Handler {
	log := logger.New("error")
	v := validation.New()

	var docs repository.DocumentStore
	var probe repository.DatabaseProbe
	if store != nil {
		docs, probe = store, store
	}

	return NewRouter(Handlers{
		Root:        NewRootHandler(log),
		Diagnostics: NewDiagnosticsHandler(probe, store != nil, log),
		Products:    NewProductHandler(service.NewProductService(repository.NewProductRepository(docs), log), v, log),
		Orders:      NewOrderHandler(service.NewOrderService(repository.NewOrderRepository(docs), log), v, log),
	}, log)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out), "body: %s", w.Body.String())
	return out
}

// errStore fails every operation with err
type errStore struct {
	err error
}

func (s errStore) CreateDocument(ctx context.Context, collection string, v any) (string, error) {
	return "", s.err
}

func (s errStore) GetDocuments(ctx context.Context, collection string) ([]repository.Document, error) {
	return nil, s.err
}

func (s errStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return nil, s.err
}

func (s errStore) Name() string { return "broken" }

func (s errStore) Close(ctx context.Context) error { return nil }

var errConnRefused = errors.New("server selection error: connection refused")
