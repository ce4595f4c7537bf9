// Package api implements the HTTP request handlers for the ledger's REST
// surface: users, accounts and transactions. Handlers decode and validate
// request payloads, delegate to the service layer and map domain and
// store errors to HTTP status codes.
package api
