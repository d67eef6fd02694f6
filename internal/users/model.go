package users

import "time"

// User is the profile row kept next to the identity provider's account.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	AvatarURL      *string   `json:"avatar_url"`
	DisabilityType *string   `json:"disability_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileUpdate carries the editable fields; nil leaves a field unchanged.
type ProfileUpdate struct {
	FullName       *string
	DisabilityType *string
	AvatarURL      *string
}
