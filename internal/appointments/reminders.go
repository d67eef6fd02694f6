package appointments

import (
	"context"
	"fmt"
	"time"

	"justicia-backend/internal/notifications"
	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/telemetry"
)

// ReminderNotifier creates reminder notifications and reports failures.
type ReminderNotifier interface {
	Notify(ctx context.Context, userID string, typ notifications.Type, title, message string) (notifications.Notification, error)
}

// Reminders notifies users about tomorrow's appointments.
type Reminders struct {
	Repo     Repo
	Notifier ReminderNotifier
	Location *time.Location
	now      func() time.Time
}

// NewReminders constructs a reminder job evaluated in loc (UTC when nil).
func NewReminders(repo Repo, notifier ReminderNotifier, loc *time.Location) *Reminders {
	if loc == nil {
		loc = time.UTC
	}
	return &Reminders{Repo: repo, Notifier: notifier, Location: loc, now: time.Now}
}

// Run sends one reminder per due appointment and stamps it so reruns are
// idempotent. It returns how many reminders were sent.
func (r *Reminders) Run(ctx context.Context) (int, error) {
	tomorrow := r.now().In(r.Location).AddDate(0, 0, 1).Format("2006-01-02")
	due, err := r.Repo.DueForReminder(ctx, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("list due appointments: %w", err)
	}

	sent := 0
	for _, a := range due {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if _, err := r.Notifier.Notify(ctx, a.UserID, notifications.TypeAppointment, "Recordatorio de cita", reminderMessage(a)); err != nil {
			telemetry.Warn("reminder.notify_failed", map[string]any{"appointment_id": a.ID, "error": err})
			continue
		}
		if err := r.Repo.MarkReminded(ctx, a.ID, r.now().UTC()); err != nil {
			telemetry.Warn("reminder.mark_failed", map[string]any{"appointment_id": a.ID, "error": err})
			continue
		}
		sent++
	}
	metrics.AddRemindersSent(sent)
	telemetry.Info("reminder.run_complete", map[string]any{"date": tomorrow, "due": len(due), "sent": sent})
	return sent, nil
}

func reminderMessage(a Appointment) string {
	if a.Lawyer != nil && a.Lawyer.FullName != "" {
		return fmt.Sprintf("Recuerda tu cita con %s mañana %s a las %s.", a.Lawyer.FullName, a.Date, a.Time)
	}
	return fmt.Sprintf("Recuerda tu cita de mañana %s a las %s.", a.Date, a.Time)
}
