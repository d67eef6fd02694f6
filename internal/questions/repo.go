package questions

import (
	"context"
	"errors"
)

// ErrInvalidInput marks a rejected request.
var ErrInvalidInput = errors.New("invalid input")

// Repo persists question history and the canned question bank.
type Repo interface {
	// Append adds a history entry. History is never updated in place.
	Append(ctx context.Context, q UserQuestion) error
	// ListByUser returns the user's whole history, newest first.
	ListByUser(ctx context.Context, userID string) ([]UserQuestion, error)
	// Recent returns at most n history entries, newest first.
	Recent(ctx context.Context, userID string, n int) ([]UserQuestion, error)
	// TopByCategory returns bank questions whose category contains topic
	// (case-insensitive), most frequent first.
	TopByCategory(ctx context.Context, topic string, n int) ([]LegalQuestion, error)
	// BumpFrequency increments the first bank question whose category equals
	// topic case-insensitively. No match is not an error.
	BumpFrequency(ctx context.Context, topic string) error
}
