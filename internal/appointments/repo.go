package appointments

import (
	"context"
	"time"
)

// Repo persists appointments.
type Repo interface {
	// Create inserts atomically; ErrSlotTaken when a non-cancelled appointment
	// already holds the (lawyer, date, time) slot.
	Create(ctx context.Context, a Appointment) error
	// ListByUser returns the user's appointments joined with their lawyer, by date and time.
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
	// SetStatus changes the status of the user's appointment; ErrNotFound otherwise.
	SetStatus(ctx context.Context, id, userID string, status Status, at time.Time) error
	// DueForReminder lists non-cancelled, not yet reminded appointments on date.
	DueForReminder(ctx context.Context, date string) ([]Appointment, error)
	MarkReminded(ctx context.Context, id string, at time.Time) error
}
