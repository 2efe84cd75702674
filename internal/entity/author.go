package entity

import "time"

// Author is created lazily the first time a book references its name.
// BookIDs is the back-reference side of the Book.AuthorIDs relation and is
// only ever written by the catalog service.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=64"`
	BookIDs   []string  `json:"book_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
