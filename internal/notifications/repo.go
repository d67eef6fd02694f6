package notifications

import "context"

// Repo persists notifications.
type Repo interface {
	Create(ctx context.Context, n Notification) error
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	// SetRead updates one notification; ErrNotFound when the id is unknown.
	SetRead(ctx context.Context, id string, read bool) error
}
