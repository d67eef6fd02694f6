package appointments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func newMock(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func sampleAppointment() Appointment {
	now := time.Now().UTC()
	return Appointment{
		ID: "a-1", UserID: "u-1", LawyerID: "l-1", Date: "2025-07-10", Time: "10:00",
		Status: StatusPending, ConsultationType: "virtual", CreatedAt: now, UpdatedAt: now,
	}
}

func TestPGRepoCreateUsesConditionalInsert(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleAppointment()

	mock.ExpectQuery("(?s)INSERT INTO appointments.*ON CONFLICT \\(lawyer_id, date, time\\) WHERE status <> 'cancelled' DO NOTHING\\s+RETURNING id").
		WithArgs(a.ID, a.UserID, a.LawyerID, a.Date, a.Time, "pending", a.ConsultationType, false, nil, a.CreatedAt, a.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(a.ID))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateConflictIsSlotTaken(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(sql.ErrNoRows)
	if err := repo.Create(context.Background(), sampleAppointment()); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	repo, mock = newMock(t)
	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(&pgconn.PgError{Code: "23505"})
	if err := repo.Create(context.Background(), sampleAppointment()); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken on unique violation, got %v", err)
	}
}

func TestPGRepoListByUserJoinsLawyer(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "lawyer_id", "date", "time", "status", "consultation_type", "needs_lsp", "notes",
		"reminder_sent_at", "created_at", "updated_at", "full_name", "specialty", "avatar_url",
	}).AddRow("a-1", "u-1", "l-1", "2025-07-10", "10:00", "pending", "virtual", true, "traer DNI", nil, now, now, "Dra. Uno", "Pensiones", nil)
	mock.ExpectQuery("JOIN lawyers l ON l.id = a.lawyer_id\\s+WHERE a.user_id = \\$1\\s+ORDER BY a.date ASC, a.time ASC").
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 || got[0].Lawyer == nil || got[0].Lawyer.FullName != "Dra. Uno" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if got[0].Notes == nil || *got[0].Notes != "traer DNI" || !got[0].NeedsLSP {
		t.Fatalf("unexpected fields: %+v", got[0])
	}
}

func TestPGRepoSetStatusNotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec("UPDATE appointments\\s+SET status").
		WithArgs("a-1", "u-1", "cancelled", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetStatus(context.Background(), "a-1", "u-1", StatusCancelled, time.Now()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
