package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lelec0/fintech-api/internal/api/shared"
	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Validation and business-rule errors
	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyNationalID),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrNegativeBalance),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, store.ErrTransactionNotFound):
		return "Transaction not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrNationalIDExists):
		return "National ID already registered"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	// Validation and business-rule errors
	case errors.Is(err, domain.ErrEmptyEmail), errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email. Expected format: user@example.com"

	case errors.Is(err, domain.ErrEmptyName):
		return "Name cannot be empty"

	case errors.Is(err, domain.ErrEmptyNationalID):
		return "National ID cannot be empty"

	case errors.Is(err, domain.ErrNonPositiveAmount):
		return "Amount must be positive"

	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds"

	case errors.Is(err, domain.ErrInvalidTransactionType):
		return "Invalid transaction type"

	case errors.Is(err, domain.ErrInvalidAccountType):
		return "Invalid account type"

	case errors.Is(err, domain.ErrNegativeBalance):
		return "Balance cannot be negative"

	case errors.Is(err, domain.ErrDescriptionTooLong):
		return "Description cannot exceed 500 characters"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and sanitized message and
// writes the response, logging the full (redacted) error. An explicit
// userMessage overrides the mapped message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validator/v10 error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'CreateUserRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
