package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider keeps bcrypt password hashes in the application database.
// Accounts are confirmed on creation.
type LocalProvider struct {
	Repo CredentialsRepo
	cost int
	now  func() time.Time
}

// NewLocalProvider constructs a LocalProvider with bcrypt.DefaultCost.
func NewLocalProvider(repo CredentialsRepo) *LocalProvider {
	return &LocalProvider{Repo: repo, cost: bcrypt.DefaultCost, now: time.Now}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}
	id := uuid.NewString()
	err = p.Repo.Create(ctx, Credential{
		UserID:       id,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	})
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: id, Email: email}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	cred, err := p.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errCredentialNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{ID: cred.UserID, Email: cred.Email}, nil
}

func (p *LocalProvider) DeleteUser(ctx context.Context, userID string) error {
	return p.Repo.Delete(ctx, userID)
}
