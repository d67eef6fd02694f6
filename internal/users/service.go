package users

import (
	"context"
	"errors"
	"strings"
	"time"
)

type Service struct {
	Repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Create stores the profile for a freshly registered account.
func (s *Service) Create(ctx context.Context, id, email, fullName string, disabilityType, avatarURL *string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(id) == "" || strings.TrimSpace(email) == "" {
		return User{}, ErrInvalidInput
	}
	now := s.now().UTC()
	user := User{
		ID:             id,
		Email:          strings.TrimSpace(email),
		FullName:       strings.TrimSpace(fullName),
		AvatarURL:      blankToNil(avatarURL),
		DisabilityType: blankToNil(disabilityType),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfile applies patch and bumps updated_at.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfileUpdate) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	if patch.FullName != nil {
		trimmed := strings.TrimSpace(*patch.FullName)
		patch.FullName = &trimmed
	}
	return s.Repo.Update(ctx, userID, patch, s.now().UTC())
}

func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	return &trimmed
}
