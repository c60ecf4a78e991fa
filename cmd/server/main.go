// Package main implements the entry point for the daycare administration
// API server: roster management, attendance tracking, program enrollment,
// the daily activity log, and staff notifications.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/brightwood/daycare-api/internal/api"
	"github.com/brightwood/daycare-api/internal/api/middleware"
	"github.com/brightwood/daycare-api/internal/config"
	"github.com/brightwood/daycare-api/internal/events"
	"github.com/brightwood/daycare-api/internal/platform/logger"
	"github.com/brightwood/daycare-api/internal/platform/metrics"
	"github.com/brightwood/daycare-api/internal/platform/postgres"
	"github.com/brightwood/daycare-api/internal/service"
	"github.com/brightwood/daycare-api/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	location, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to resolve facility time zone: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"time_zone", cfg.Server.TimeZone)

	db, err := openDatabase(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	if err := migrateDatabase(db); err != nil {
		return err
	}

	// Stores
	attendanceStore := postgres.NewAttendanceStore(db, appLogger)
	enrollmentStore := postgres.NewEnrollmentStore(db, appLogger)
	childStore := postgres.NewChildStore(db, appLogger)
	parentStore := postgres.NewParentStore(db, appLogger)
	staffStore := postgres.NewStaffStore(db, appLogger)
	programStore := postgres.NewProgramStore(db, appLogger)
	activityStore := postgres.NewActivityStore(db, appLogger)
	notificationStore := postgres.NewNotificationStore(db, appLogger)

	// Event fan-out: every attendance and enrollment event writes a parent
	// notification and bumps the corresponding counter.
	emitter := events.NewInMemoryEventEmitter(appLogger)
	emitter.RegisterHandler(events.NewNotificationWriter(notificationStore, location, appLogger))
	emitter.RegisterHandler(metrics.NewEventCounter())

	// Services
	attendanceService, err := service.NewAttendanceService(
		db, attendanceStore, childStore, emitter, location, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create attendance service: %w", err)
	}

	enrollmentService, err := service.NewEnrollmentService(
		db, enrollmentStore, programStore, childStore, emitter, location, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create enrollment service: %w", err)
	}

	// Handlers and routes
	handlers := api.Handlers{
		Attendance:   api.NewAttendanceHandler(attendanceService, location, appLogger),
		Program:      api.NewProgramHandler(programStore, enrollmentService, appLogger),
		Child:        api.NewChildHandler(childStore, parentStore, appLogger),
		Parent:       api.NewParentHandler(parentStore, childStore, appLogger),
		Staff:        api.NewStaffHandler(staffStore, appLogger),
		Activity:     api.NewActivityHandler(activityStore, childStore, location, appLogger),
		Notification: api.NewNotificationHandler(notificationStore, appLogger),
		Dashboard:    api.NewDashboardHandler(childStore, parentStore, programStore, attendanceService, appLogger),
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret)
	router := api.NewRouter(handlers, authMiddleware)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return serveWithGracefulShutdown(server)
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")
	return db, nil
}

// migrateDatabase applies any pending schema migrations from the embedded
// migration files.
func migrateDatabase(db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("database migrations applied")
	return nil
}

// serveWithGracefulShutdown runs the HTTP server until SIGINT or SIGTERM,
// then drains in-flight requests before returning.
func serveWithGracefulShutdown(server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		slog.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
