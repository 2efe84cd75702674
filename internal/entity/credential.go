package entity

import "time"

// Credential holds a user's password hash, one row per user, kept apart
// from the user record itself.
type Credential struct {
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}
