package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lelec0/fintech-api/internal/domain"
)

// CreateUserRequest contains the payload for registering a new user.
type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,max=100"`
	NationalID string `json:"national_id" validate:"required,max=20"`
}

// UpdateUserRequest contains the payload for updating an existing user.
// Empty fields keep their current value.
type UpdateUserRequest struct {
	Name       string `json:"name" validate:"omitempty,max=100"`
	Email      string `json:"email" validate:"omitempty,max=100"`
	NationalID string `json:"national_id" validate:"omitempty,max=20"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	NationalID string    `json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		NationalID: user.NationalID,
		CreatedAt:  user.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}

// CreateAccountRequest contains the payload for opening a new account.
// Balance defaults to zero and account type to CHECKING when omitted.
type CreateAccountRequest struct {
	UserID      uuid.UUID        `json:"user_id" validate:"required"`
	Balance     *decimal.Decimal `json:"balance" validate:"omitempty"`
	AccountType string           `json:"account_type" validate:"omitempty,oneof=CHECKING SAVINGS"`
}

// UpdateAccountRequest contains the payload for updating an account.
type UpdateAccountRequest struct {
	AccountType string `json:"account_type" validate:"omitempty,oneof=CHECKING SAVINGS"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	UserID      uuid.UUID       `json:"user_id"`
	Balance     decimal.Decimal `json:"balance"`
	AccountType string          `json:"account_type"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToAccountResponse converts a domain account to its API representation.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		Number:      account.Number,
		UserID:      account.UserID,
		Balance:     account.Balance,
		AccountType: string(account.Type),
		CreatedAt:   account.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []*domain.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountResponse(account))
	}
	return responses
}

// CreateTransactionRequest contains the payload for recording a transaction.
type CreateTransactionRequest struct {
	AccountID   uuid.UUID       `json:"account_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=DEPOSIT WITHDRAWAL TRANSFER PAYMENT"`
	Description string          `json:"description" validate:"omitempty,max=500"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// ToTransactionResponse converts a domain transaction to its API representation.
func ToTransactionResponse(transaction *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              transaction.ID,
		AccountID:       transaction.AccountID,
		Amount:          transaction.Amount,
		Type:            string(transaction.Type),
		Description:     transaction.Description,
		TransactionDate: transaction.TransactionDate,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(transactions []*domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return responses
}
