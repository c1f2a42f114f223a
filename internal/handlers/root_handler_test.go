package handlers

import (
	"net/http"
	"testing"

	"github.com/saree-store/backend/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestRootHandler(t *testing.T) {
	router := newTestRouter(repository.NewMemoryStore("test"))

	tests := []struct {
		path    string
		message string
	}{
		{"/", "Saree Store API is running"},
		{"/api/hello", "Hello from the backend API!"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, map[string]string{"message": tt.message}, decodeBody[map[string]string](t, w))
		})
	}
}
