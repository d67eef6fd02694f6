package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"justicia-backend/internal/shared/storage/db"
)

// Credential is a locally stored password hash.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

var errCredentialNotFound = errors.New("credential not found")

// CredentialsRepo persists local credentials. Emails are compared case-insensitively.
type CredentialsRepo interface {
	Create(ctx context.Context, c Credential) error
	GetByEmail(ctx context.Context, email string) (Credential, error)
	Delete(ctx context.Context, userID string) error
}

// MemoryCredentials is an in-memory CredentialsRepo.
type MemoryCredentials struct {
	mu      sync.RWMutex
	byEmail map[string]Credential
}

func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{byEmail: make(map[string]Credential)}
}

func (r *MemoryCredentials) Create(ctx context.Context, c Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.ToLower(c.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return ErrEmailTaken
	}
	r.byEmail[key] = c
	return nil
}

func (r *MemoryCredentials) GetByEmail(ctx context.Context, email string) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return Credential{}, errCredentialNotFound
	}
	return c, nil
}

func (r *MemoryCredentials) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, c := range r.byEmail {
		if c.UserID == userID {
			delete(r.byEmail, k)
		}
	}
	return nil
}

// PGCredentials implements CredentialsRepo using Postgres.
type PGCredentials struct {
	DB *sql.DB
}

func (r *PGCredentials) Create(ctx context.Context, c Credential) error {
	const query = `
INSERT INTO credentials (user_id, email, password_hash, created_at)
VALUES ($1, lower($2), $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, c.UserID, c.Email, c.PasswordHash, c.CreatedAt)
	if db.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PGCredentials) GetByEmail(ctx context.Context, email string) (Credential, error) {
	const query = `
SELECT user_id, email, password_hash, created_at
FROM credentials
WHERE email = lower($1)`
	var c Credential
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&c.UserID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Credential{}, errCredentialNotFound
	}
	return c, err
}

func (r *PGCredentials) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = $1`, userID)
	return err
}
