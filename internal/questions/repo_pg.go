package questions

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Append(ctx context.Context, q UserQuestion) error {
	const query = `
INSERT INTO user_questions (id, user_id, question, answer, category, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query, q.ID, q.UserID, q.Question, q.Answer, q.Category, q.CreatedAt)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]UserQuestion, error) {
	const query = `
SELECT id, user_id, question, answer, category, created_at
FROM user_questions
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanUserQuestions(rows)
}

func (r *PGRepo) Recent(ctx context.Context, userID string, n int) ([]UserQuestion, error) {
	const query = `
SELECT id, user_id, question, answer, category, created_at
FROM user_questions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, userID, n)
	if err != nil {
		return nil, err
	}
	return scanUserQuestions(rows)
}

func (r *PGRepo) TopByCategory(ctx context.Context, topic string, n int) ([]LegalQuestion, error) {
	const query = `
SELECT id, question, answer, category, frequency, created_at
FROM legal_questions
WHERE category ILIKE '%' || $1::text || '%'
ORDER BY frequency DESC, id
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, topic, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LegalQuestion, 0)
	for rows.Next() {
		var q LegalQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Frequency, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan legal question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// BumpFrequency increments in one statement so concurrent bumps are not lost.
func (r *PGRepo) BumpFrequency(ctx context.Context, topic string) error {
	const query = `
UPDATE legal_questions
SET frequency = frequency + 1
WHERE id = (
    SELECT id FROM legal_questions
    WHERE lower(category) = lower($1)
    ORDER BY id
    LIMIT 1
)`
	_, err := r.DB.ExecContext(ctx, query, topic)
	return err
}

func scanUserQuestions(rows *sql.Rows) ([]UserQuestion, error) {
	defer rows.Close()
	out := make([]UserQuestion, 0)
	for rows.Next() {
		var q UserQuestion
		if err := rows.Scan(&q.ID, &q.UserID, &q.Question, &q.Answer, &q.Category, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
