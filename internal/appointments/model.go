package appointments

import "time"

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Appointment is a booked consultation. Date is YYYY-MM-DD and Time is HH:MM.
type Appointment struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	LawyerID         string         `json:"lawyer_id"`
	Date             string         `json:"date"`
	Time             string         `json:"time"`
	Status           Status         `json:"status"`
	ConsultationType string         `json:"consultation_type"`
	NeedsLSP         bool           `json:"needs_lsp"`
	Notes            *string        `json:"notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	Lawyer           *LawyerSummary `json:"lawyers,omitempty"`
	ReminderSentAt   *time.Time     `json:"-"`
}

// LawyerSummary is the lawyer data joined into appointment listings.
type LawyerSummary struct {
	FullName  string  `json:"full_name"`
	Specialty string  `json:"specialty"`
	AvatarURL *string `json:"avatar_url"`
}
