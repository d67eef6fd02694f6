package questions

import "time"

// UserQuestion is one entry of a user's chat history.
type UserQuestion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// LegalQuestion is a canned question of the reference bank.
type LegalQuestion struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Frequency int       `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
}
