package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"justicia-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

const selectUser = `
SELECT id, email, full_name, avatar_url, disability_type, created_at, updated_at
FROM users`

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, avatar_url, disability_type, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		nullable(user.AvatarURL),
		nullable(user.DisabilityType),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if db.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	row := r.DB.QueryRowContext(ctx, selectUser+`
WHERE id = $1
LIMIT 1`, userID)
	return scanUser(row)
}

// Update applies only the non-nil fields of patch.
func (r *PGRepo) Update(ctx context.Context, userID string, patch ProfileUpdate, at time.Time) (User, error) {
	const query = `
UPDATE users SET
  full_name = CASE WHEN $2 THEN $3 ELSE full_name END,
  disability_type = CASE WHEN $4 THEN $5 ELSE disability_type END,
  avatar_url = CASE WHEN $6 THEN $7 ELSE avatar_url END,
  updated_at = $8
WHERE id = $1
RETURNING id, email, full_name, avatar_url, disability_type, created_at, updated_at`
	row := r.DB.QueryRowContext(ctx, query,
		userID,
		patch.FullName != nil, deref(patch.FullName),
		patch.DisabilityType != nil, nullable(patch.DisabilityType),
		patch.AvatarURL != nil, nullable(patch.AvatarURL),
		at,
	)
	return scanUser(row)
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var avatar, disability sql.NullString
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &avatar, &disability, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if avatar.Valid {
		user.AvatarURL = &avatar.String
	}
	if disability.Valid {
		user.DisabilityType = &disability.String
	}
	return user, nil
}

func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return db.NullableString(*v)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
