package lawyers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectLawyers = `
SELECT id, full_name, specialty, experience_years, rating, available, avatar_url, created_at
FROM lawyers`

func (r *PGRepo) List(ctx context.Context) ([]Lawyer, error) {
	return r.query(ctx, selectLawyers+`
ORDER BY rating DESC, full_name`)
}

func (r *PGRepo) ListAvailable(ctx context.Context) ([]Lawyer, error) {
	return r.query(ctx, selectLawyers+`
WHERE available
ORDER BY rating DESC, full_name`)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Lawyer, error) {
	row := r.DB.QueryRowContext(ctx, selectLawyers+`
WHERE id = $1`, id)
	l, err := scanLawyer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lawyer{}, ErrNotFound
		}
		return Lawyer{}, err
	}
	return l, nil
}

func (r *PGRepo) query(ctx context.Context, query string) ([]Lawyer, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Lawyer, 0)
	for rows.Next() {
		l, err := scanLawyer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lawyer: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLawyer(s scanner) (Lawyer, error) {
	var l Lawyer
	var avatar sql.NullString
	if err := s.Scan(&l.ID, &l.FullName, &l.Specialty, &l.ExperienceYears, &l.Rating, &l.Available, &avatar, &l.CreatedAt); err != nil {
		return Lawyer{}, err
	}
	if avatar.Valid {
		l.AvatarURL = &avatar.String
	}
	return l, nil
}
