package appointments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"justicia-backend/internal/shared/storage/db"
)

// PGRepo implements Repo using Postgres. Slot uniqueness is enforced by the
// partial unique index appointments_active_slot_idx.
type PGRepo struct {
	DB *sql.DB
}

const selectJoined = `
SELECT a.id, a.user_id, a.lawyer_id, to_char(a.date, 'YYYY-MM-DD'), to_char(a.time, 'HH24:MI'),
       a.status, a.consultation_type, a.needs_lsp, a.notes, a.reminder_sent_at, a.created_at, a.updated_at,
       l.full_name, l.specialty, l.avatar_url
FROM appointments a
JOIN lawyers l ON l.id = a.lawyer_id`

func (r *PGRepo) Create(ctx context.Context, a Appointment) error {
	const query = `
INSERT INTO appointments (
    id,
    user_id,
    lawyer_id,
    date,
    time,
    status,
    consultation_type,
    needs_lsp,
    notes,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, $8, $9, $10, $11)
ON CONFLICT (lawyer_id, date, time) WHERE status <> 'cancelled' DO NOTHING
RETURNING id`

	var notes any
	if a.Notes != nil {
		notes = db.NullableString(*a.Notes)
	}
	var id string
	err := r.DB.QueryRowContext(ctx, query,
		a.ID,
		a.UserID,
		a.LawyerID,
		a.Date,
		a.Time,
		string(a.Status),
		a.ConsultationType,
		a.NeedsLSP,
		notes,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows), db.IsUniqueViolation(err):
		return ErrSlotTaken
	default:
		return err
	}
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, selectJoined+`
WHERE a.user_id = $1
ORDER BY a.date ASC, a.time ASC`, userID)
	if err != nil {
		return nil, err
	}
	return scanJoined(rows)
}

func (r *PGRepo) SetStatus(ctx context.Context, id, userID string, status Status, at time.Time) error {
	const query = `
UPDATE appointments
SET status = $3, updated_at = $4
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, userID, string(status), at)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrSlotTaken
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) DueForReminder(ctx context.Context, date string) ([]Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, selectJoined+`
WHERE a.date = $1::date
  AND a.status <> 'cancelled'
  AND a.reminder_sent_at IS NULL
ORDER BY a.time ASC`, date)
	if err != nil {
		return nil, err
	}
	return scanJoined(rows)
}

func (r *PGRepo) MarkReminded(ctx context.Context, id string, at time.Time) error {
	const query = `
UPDATE appointments
SET reminder_sent_at = $2, updated_at = $2
WHERE id = $1 AND reminder_sent_at IS NULL`
	_, err := r.DB.ExecContext(ctx, query, id, at)
	return err
}

func scanJoined(rows *sql.Rows) ([]Appointment, error) {
	defer rows.Close()
	out := make([]Appointment, 0)
	for rows.Next() {
		var a Appointment
		var status string
		var notes, avatar sql.NullString
		var reminded sql.NullTime
		var lawyer LawyerSummary
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.LawyerID,
			&a.Date,
			&a.Time,
			&status,
			&a.ConsultationType,
			&a.NeedsLSP,
			&notes,
			&reminded,
			&a.CreatedAt,
			&a.UpdatedAt,
			&lawyer.FullName,
			&lawyer.Specialty,
			&avatar,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		a.Status = Status(status)
		if notes.Valid {
			a.Notes = &notes.String
		}
		if reminded.Valid {
			a.ReminderSentAt = &reminded.Time
		}
		if avatar.Valid {
			lawyer.AvatarURL = &avatar.String
		}
		a.Lawyer = &lawyer
		out = append(out, a)
	}
	return out, rows.Err()
}
