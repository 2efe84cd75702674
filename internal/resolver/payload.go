package resolver

import "bookshelf/internal/entity"

// Error is one entry in a payload's error list. Operations never raise to
// the boundary layer; they collect errors here and return the payload.
type Error struct {
	Message string `json:"message"`
}

type UserPayload struct {
	User   *entity.User `json:"user,omitempty"`
	Token  string       `json:"token,omitempty"`
	Errors []Error      `json:"errors"`
}

type BookPayload struct {
	Book   *entity.Book `json:"book,omitempty"`
	Errors []Error      `json:"errors"`
}

type BooksPayload struct {
	Books  []entity.Book `json:"books"`
	Errors []Error       `json:"errors"`
}

type AuthorPayload struct {
	Author *entity.Author `json:"author,omitempty"`
	Errors []Error        `json:"errors"`
}

type EmailPayload struct {
	Message string  `json:"message,omitempty"`
	Email   string  `json:"email,omitempty"`
	Errors  []Error `json:"errors"`
}

type PasswordPayload struct {
	Message string  `json:"message,omitempty"`
	Errors  []Error `json:"errors"`
}

type CollectionPayload struct {
	Message   string            `json:"message,omitempty"`
	UserBooks []entity.UserBook `json:"user_books"`
	Errors    []Error           `json:"errors"`
}

// SearchResultKind tags which shape a search produced.
type SearchResultKind string

const (
	BooksResult   SearchResultKind = "books"
	AuthorsResult SearchResultKind = "authors"
	ErrorResult   SearchResultKind = "error"
)

type SearchPayload struct {
	Kind    SearchResultKind `json:"kind"`
	Books   []entity.Book    `json:"books,omitempty"`
	Authors []entity.Author  `json:"authors,omitempty"`
	Errors  []Error          `json:"errors"`
}

// classify picks the result tag: any error or an empty match set wins over
// everything, then books over authors.
func (p *SearchPayload) classify() {
	switch {
	case len(p.Errors) > 0:
		p.Kind = ErrorResult
	case len(p.Books) > 0:
		p.Kind = BooksResult
	case len(p.Authors) > 0:
		p.Kind = AuthorsResult
	default:
		p.Kind = ErrorResult
	}
}
