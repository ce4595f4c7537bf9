package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID     = errors.New("user ID cannot be empty")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyNationalID = errors.New("national ID cannot be empty")
)

// emailRegex accepts addresses of the form local-part@domain.tld where the
// local part is alphanumerics plus _+&*- in dot-separated segments and the
// TLD is 2-7 letters.
var emailRegex = regexp.MustCompile(
	`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`,
)

// User represents a registered customer of the ledger.
// Email and NationalID are unique across all users.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	NationalID string    `json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUser creates a new User with the given name, email and national ID.
// It generates a new UUID for the user ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewUser(name, email, nationalID string) (*User, error) {
	user := &User{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		NationalID: nationalID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if strings.TrimSpace(u.NationalID) == "" {
		return ErrEmptyNationalID
	}

	return nil
}

// ValidateEmail checks that the email is non-blank and matches the
// accepted format. Returns ErrEmptyEmail or ErrInvalidEmail on failure.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}
