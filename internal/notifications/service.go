package notifications

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"justicia-backend/internal/shared/telemetry"
)

// Service creates and reads notifications.
type Service struct {
	Repo Repo
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Notify creates an unread notification for the user.
func (s *Service) Notify(ctx context.Context, userID string, typ Type, title, message string) (Notification, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(title) == "" {
		return Notification{}, ErrInvalidInput
	}
	n := Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// NotifyBestEffort is Notify for callers whose primary operation already
// succeeded; failures are logged only.
func (s *Service) NotifyBestEffort(ctx context.Context, userID string, typ Type, title, message string) {
	if _, err := s.Notify(ctx, userID, typ, title, message); err != nil {
		telemetry.Warn("notification.create_failed", map[string]any{
			"user_id": userID,
			"type":    string(typ),
			"error":   err,
		})
	}
}

// List returns the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// MarkRead sets the read flag of one notification.
func (s *Service) MarkRead(ctx context.Context, id string, read bool) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.Repo.SetRead(ctx, id, read)
}
