package entity

import "time"

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email" validate:"required,email,max=64"`
	Books     []UserBook `json:"books"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UserBook is one entry in a user's personal collection: a book plus the
// reading status the user assigned to it.
type UserBook struct {
	ID     string `json:"id"`
	BookID string `json:"book_id"`
	Status string `json:"status"`
}
