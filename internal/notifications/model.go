package notifications

import (
	"errors"
	"time"
)

// Type classifies a notification.
type Type string

const (
	TypeAppointment Type = "appointment"
	TypeSystem      Type = "system"
	TypeChat        Type = "chat"
)

var (
	ErrNotFound     = errors.New("notification not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Notification is a message shown in the user's inbox.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
