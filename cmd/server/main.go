package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/saree-store/backend/internal/config"
	"github.com/saree-store/backend/internal/handlers"
	"github.com/saree-store/backend/internal/repository"
	"github.com/saree-store/backend/internal/service"
	"github.com/saree-store/backend/internal/validation"
	"github.com/saree-store/backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// memoryScheme selects the in-process store instead of MongoDB
const memoryScheme = "memory://"

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped gracefully")
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting saree store api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"database_configured", cfg.Database.Configured(),
	)

	store, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				log.Error("failed to close database", "error", err)
			}
		}()
	}

	// Initialize repositories and services. A nil store is passed through so
	// requests fail with ErrStoreUnavailable.
	var docs repository.DocumentStore
	var probe repository.DatabaseProbe
	if store != nil {
		docs, probe = store, store
	}

	productService := service.NewProductService(repository.NewProductRepository(docs), log)
	orderService := service.NewOrderService(repository.NewOrderRepository(docs), log)

	// Initialize handlers
	v := validation.New()
	router := handlers.NewRouter(handlers.Handlers{
		Root:        handlers.NewRootHandler(log),
		Diagnostics: handlers.NewDiagnosticsHandler(probe, cfg.Database.Configured(), log),
		Products:    handlers.NewProductHandler(productService, v, log),
		Orders:      handlers.NewOrderHandler(orderService, v, log),
	}, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal to gracefully shutdown the server
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openStore connects the configured document store. It returns nil without
// error when no DATABASE_URL is set, and only fails on an unusable URL.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (repository.Store, error) {
	if !cfg.Configured() {
		log.Warn("DATABASE_URL not set, running without a database")
		return nil, nil
	}

	if strings.HasPrefix(cfg.URL, memoryScheme) {
		log.Info("using in-memory document store", "database", cfg.Name)
		return repository.NewMemoryStore(cfg.Name), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	store, err := repository.ConnectMongo(connectCtx, cfg.URL, cfg.Name)
	if err != nil {
		return nil, err
	}

	// An unreachable server is not fatal. Requests report the driver error
	// and /test shows the connection state until the server comes back.
	if err := store.Ping(connectCtx); err != nil {
		log.Warn("database ping failed, starting anyway", "database", store.Name(), "error", err)
		return store, nil
	}

	log.Info("connected to database", "database", store.Name())
	return store, nil
}
