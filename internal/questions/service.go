package questions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service exposes question history and bank operations.
type Service struct {
	Repo Repo
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Record appends one answered question to the user's history.
func (s *Service) Record(ctx context.Context, userID, question, answer, category string) (UserQuestion, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(question) == "" {
		return UserQuestion{}, ErrInvalidInput
	}
	if category == "" {
		category = "general"
	}
	q := UserQuestion{
		ID:        uuid.NewString(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Category:  category,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Append(ctx, q); err != nil {
		return UserQuestion{}, err
	}
	return q, nil
}

// History returns the user's questions, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]UserQuestion, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Recent returns the user's last n questions, newest first.
func (s *Service) Recent(ctx context.Context, userID string, n int) ([]UserQuestion, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.Recent(ctx, userID, n)
}

// BumpFrequency counts a live query against the bank question for topic.
func (s *Service) BumpFrequency(ctx context.Context, topic string) error {
	if strings.TrimSpace(topic) == "" {
		return nil
	}
	return s.Repo.BumpFrequency(ctx, topic)
}
