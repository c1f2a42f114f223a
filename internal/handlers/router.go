package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/saree-store/backend/internal/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Root        *RootHandler
	Diagnostics *DiagnosticsHandler
	Products    *ProductHandler
	Orders      *OrderHandler
}

// NewRouter builds the HTTP router with middleware applied
func NewRouter(h Handlers, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(newCompressor().Handler)

	// CORS is open to every origin; credentials are allowed, so origins are echoed back
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	r.Get("/", h.Root.Index)
	r.Get("/test", h.Diagnostics.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", h.Root.Hello)

		r.Get("/products", h.Products.ListProducts)
		r.Post("/products", h.Products.CreateProduct)

		r.Post("/orders", h.Orders.CreateOrder)
	})

	return r
}

// newCompressor compresses JSON responses with gzip, deflate or brotli
func newCompressor() *chimiddleware.Compressor {
	c := chimiddleware.NewCompressor(5, "application/json")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}
