package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aayush-1o/freightflow/internal/auth/http"
	"github.com/aayush-1o/freightflow/internal/auth/mail"
	"github.com/aayush-1o/freightflow/internal/auth/service"
	"github.com/aayush-1o/freightflow/internal/auth/store"
	"github.com/aayush-1o/freightflow/internal/auth/store/drivers/sqlite"
	"github.com/aayush-1o/freightflow/pkg/cryptox"
	"github.com/aayush-1o/freightflow/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	mailer mail.Sender

	// Services
	userService          *service.UserService
	passwordResetService *service.PasswordResetService
	housekeepingService  *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "freightflow-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initMailer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer selects the reset-link delivery mechanism from configuration.
func (app *Application) initMailer() error {
	switch app.cfg.MailDriver {
	case "smtp":
		sender, err := mail.NewSMTPSender(
			app.cfg.SMTPHost,
			app.cfg.SMTPPort,
			app.cfg.SMTPUser,
			app.cfg.SMTPPass,
			app.cfg.SMTPFrom,
			app.cfg.SMTPFromName,
			app.cfg.SMTPUseTLS,
		)
		if err != nil {
			return fmt.Errorf("failed to configure smtp sender: %w", err)
		}
		app.mailer = sender
		app.logger.Info("mail driver configured", "driver", "smtp", "host", app.cfg.SMTPHost)

	case "log":
		app.mailer = &mail.LogSender{Logger: app.logger}
		app.logger.Info("mail driver configured", "driver", "log")

	case "disabled":
		app.mailer = mail.NewDisabledSender("mail driver disabled by configuration")
		app.logger.Warn("mail driver disabled; forgot-password requests will fail")

	default:
		return fmt.Errorf("unknown mail driver %q", app.cfg.MailDriver)
	}

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}

	app.passwordResetService = &service.PasswordResetService{
		Store:    app.db,
		Mailer:   app.mailer,
		ResetURL: app.cfg.ResetBaseURL,
		TokenTTL: app.cfg.ResetTokenTTL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.UserService = app.userService
	router.PasswordResetService = app.passwordResetService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
