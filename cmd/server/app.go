package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lelec0/fintech-api/internal/config"
	"github.com/lelec0/fintech-api/internal/platform/postgres"
	"github.com/lelec0/fintech-api/internal/service"
	"github.com/lelec0/fintech-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	accountStore     store.AccountStore
	transactionStore store.TransactionStore

	// Service interfaces
	userService        service.UserService
	accountService     service.AccountService
	transactionService service.TransactionService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)
	app.transactionStore = postgres.NewPostgresTransactionStore(db, logger)

	// Initialize services
	transactor := store.NewSQLTransactor(db)
	app.userService = service.NewUserService(app.userStore, transactor, logger)
	app.accountService = service.NewAccountService(
		app.accountStore,
		app.userStore,
		transactor,
		logger,
	)
	app.transactionService = service.NewTransactionService(
		app.transactionStore,
		app.accountStore,
		transactor,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
