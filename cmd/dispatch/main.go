package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/dispatch-scheduler/internal/application"
	"github.com/example/dispatch-scheduler/internal/config"
	httptransport "github.com/example/dispatch-scheduler/internal/http"
	"github.com/example/dispatch-scheduler/internal/persistence/memory"
	"github.com/example/dispatch-scheduler/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	assignmentStore, resourceCatalog, closer, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open storage", "error", err, "dsn", cfg.SQLiteDSN)
		os.Exit(1)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	idGenerator := uuid.NewString

	dispatchService := application.NewDispatchServiceWithLogger(assignmentStore, idGenerator, logger)
	catalogService := application.NewCatalogServiceWithLogger(resourceCatalog, cfg.NoEquipmentID, logger)
	calendarService := application.NewCalendarServiceWithLogger(assignmentStore, catalogService, logger)
	calendarView := application.NewCalendarView(calendarService, time.Now)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Assignments: httptransport.NewAssignmentHandler(dispatchService, logger),
		Calendar:    httptransport.NewCalendarHandler(calendarView, calendarService, logger),
		Catalog:     httptransport.NewCatalogHandler(catalogService, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("dispatch API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// openStore opens the configured backing store and applies migrations. The
// mem: DSN selects the in-memory store used for demos and tests.
func openStore(cfg config.Config) (application.AssignmentStore, application.ResourceCatalog, io.Closer, error) {
	if cfg.UseMemoryStore() {
		store := memory.Open()
		return store, store, store, nil
	}

	store, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		return nil, nil, nil, err
	}
	return store.Assignments, store.Catalog, store, nil
}
