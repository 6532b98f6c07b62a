package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the identity record. It is distinct from the portfolio content
// it owns; the two live in separate collections.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrEmailTaken      = errors.New("email already exists")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidEmail    = errors.New("email must not be empty")
	ErrInvalidUsername = errors.New("username must not be empty")
)

// NormalizeEmail lowercases and trims the address. Emails are matched
// case-insensitively; usernames stay case-sensitive exact-match.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Account) Validate() error {
	if NormalizeEmail(a.Email) == "" {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(a.Username) == "" {
		return ErrInvalidUsername
	}
	return nil
}

type Repository interface {
	// Create inserts the account, failing with ErrEmailTaken or
	// ErrUsernameTaken when either invariant would be violated. The
	// duplicate check and the insert are atomic with respect to other
	// Create calls.
	Create(ctx context.Context, a *Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
}
