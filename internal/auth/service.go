package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"justicia-backend/internal/notifications"
	sessions "justicia-backend/internal/shared/auth"
	"justicia-backend/internal/shared/telemetry"
	"justicia-backend/internal/users"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

var (
	ErrProfileCreate = errors.New("create user profile")
	ErrProfileLookup = errors.New("load user profile")
)

// ValidationError is a rejected registration or login payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Profiles is the slice of the users service accounts depend on.
type Profiles interface {
	Create(ctx context.Context, id, email, fullName string, disabilityType, avatarURL *string) (users.User, error)
	GetByID(ctx context.Context, userID string) (users.User, error)
}

// Notifier delivers the welcome message.
type Notifier interface {
	NotifyBestEffort(ctx context.Context, userID string, typ notifications.Type, title, message string)
}

// SessionManager issues and revokes server sessions.
type SessionManager interface {
	Start(ctx context.Context, userID, email string) (sessions.Token, error)
	End(ctx context.Context, sessionID string) error
}

// Service ties the identity provider to profiles and sessions.
type Service struct {
	Provider Provider
	Profiles Profiles
	Notify   Notifier
	Sessions SessionManager
}

func NewService(provider Provider, profiles Profiles, notifier Notifier, sessions SessionManager) *Service {
	return &Service{Provider: provider, Profiles: profiles, Notify: notifier, Sessions: sessions}
}

type RegisterRequest struct {
	Email          string
	Password       string
	FullName       string
	DisabilityType *string
	AvatarURL      *string
}

type LoginResult struct {
	User    users.User
	Session sessions.Token
}

// Register creates the provider account and its profile row. A profile
// failure removes the provider account again.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (users.User, error) {
	if !emailPattern.MatchString(req.Email) {
		return users.User{}, &ValidationError{Message: "Por favor ingresa un correo electrónico válido"}
	}
	if len(req.Password) < minPasswordLength {
		return users.User{}, &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if strings.TrimSpace(req.FullName) == "" {
		return users.User{}, &ValidationError{Message: "Full name is required"}
	}

	identity, err := s.Provider.SignUp(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return users.User{}, err
	}

	user, err := s.Profiles.Create(ctx, identity.ID, strings.TrimSpace(req.Email), req.FullName, req.DisabilityType, req.AvatarURL)
	if err != nil {
		if delErr := s.Provider.DeleteUser(ctx, identity.ID); delErr != nil {
			telemetry.Error("auth.rollback_failed", map[string]any{"user_id": identity.ID, "error": delErr})
		}
		return users.User{}, fmt.Errorf("%w: %v", ErrProfileCreate, err)
	}

	if s.Notify != nil {
		s.Notify.NotifyBestEffort(ctx, user.ID, notifications.TypeSystem,
			"Welcome to Justicia Accesible!",
			"Thank you for registering. We're here to help with specialized legal advice.")
	}
	telemetry.Info("auth.registered", map[string]any{"user_id": user.ID})
	return user, nil
}

// Login verifies credentials with the provider and opens a server session.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{}, &ValidationError{Message: "Email y contraseña son requeridos"}
	}
	identity, err := s.Provider.SignIn(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	profile, err := s.Profiles.GetByID(ctx, identity.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrProfileLookup, err)
	}

	token, err := s.Sessions.Start(ctx, identity.ID, identity.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("start session: %w", err)
	}
	if identity.Email != "" {
		profile.Email = identity.Email
	}
	return LoginResult{User: profile, Session: token}, nil
}

// Logout revokes sessionID. Without a session there is nothing to do.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Sessions.End(ctx, sessionID)
}
