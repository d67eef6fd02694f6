// Package auth registers and signs in users against an identity provider and
// exchanges a successful sign-in for a server-issued session.
package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrInvalidEmail       = errors.New("email rejected by provider")
)

// Identity is the provider's view of an account.
type Identity struct {
	ID    string
	Email string
}

// Provider is an identity backend.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Identity, error)
	// DeleteUser removes an account; used to roll back a failed registration.
	DeleteUser(ctx context.Context, userID string) error
}

// ProviderError is a rejection reported by a remote provider that does not
// map to one of the sentinel errors.
type ProviderError struct {
	Status  int
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("identity provider: %s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("identity provider (%d): %s", e.Status, e.Message)
}
