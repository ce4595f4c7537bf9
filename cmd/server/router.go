package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lelec0/fintech-api/internal/api"
	apiMiddleware "github.com/lelec0/fintech-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	userHandler := api.NewUserHandler(app.userService)
	accountHandler := api.NewAccountHandler(app.accountService)
	transactionHandler := api.NewTransactionHandler(app.transactionService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// User endpoints
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Put("/users/{id}", userHandler.UpdateUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)

		// Account endpoints
		r.Post("/accounts", accountHandler.CreateAccount)
		r.Get("/accounts", accountHandler.ListAccounts)
		r.Get("/accounts/user/{userId}", accountHandler.ListUserAccounts)
		r.Get("/accounts/{id}", accountHandler.GetAccount)
		r.Put("/accounts/{id}", accountHandler.UpdateAccount)
		r.Delete("/accounts/{id}", accountHandler.DeleteAccount)

		// Transaction endpoints
		r.Post("/transactions", transactionHandler.CreateTransaction)
		r.Get("/transactions", transactionHandler.ListTransactions)
		r.Get("/transactions/account/{accountId}", transactionHandler.ListAccountTransactions)
		r.Get("/transactions/{id}", transactionHandler.GetTransaction)
		r.Delete("/transactions/{id}", transactionHandler.DeleteTransaction)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
