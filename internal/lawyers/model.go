package lawyers

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lawyer id does not resolve.
var ErrNotFound = errors.New("lawyer not found")

// Lawyer is a bookable professional.
type Lawyer struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Specialty       string    `json:"specialty"`
	ExperienceYears int       `json:"experience_years"`
	Rating          float64   `json:"rating"`
	Available       bool      `json:"available"`
	AvatarURL       *string   `json:"avatar_url"`
	CreatedAt       time.Time `json:"created_at"`
}
