package entity

import "time"

type Book struct {
	ID          string    `json:"id"`
	ISBN        string    `json:"isbn" validate:"required"`
	Title       string    `json:"title" validate:"required,max=64"`
	Pages       int       `json:"pages" validate:"required,gt=0"`
	Description string    `json:"description" validate:"max=2500"`
	ImgURL      string    `json:"img_url" validate:"required,max=2500"`
	AuthorIDs   []string  `json:"author_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
