// Package service provides the application-level façades for managing
// users, accounts and transactions. Services orchestrate entity lookups,
// apply the domain validation and balance rules, and run every mutating
// operation inside a single store transaction.
package service
