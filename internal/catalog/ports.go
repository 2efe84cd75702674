package catalog

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	CreateBook(ctx context.Context, b *entity.Book) error
	GetBook(ctx context.Context, id string) (entity.Book, error)
	ListBooks(ctx context.Context) ([]entity.Book, error)

	FindAuthorsByNames(ctx context.Context, names []string) ([]entity.Author, error)
	InsertAuthors(ctx context.Context, authors []entity.Author) error
	AppendBookToAuthor(ctx context.Context, authorID, bookID string) error
	GetAuthor(ctx context.Context, id string) (entity.Author, error)

	SearchBooksByTitle(ctx context.Context, q string) ([]entity.Book, error)
	SearchBooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error)
	SearchAuthorsByName(ctx context.Context, q string) ([]entity.Author, error)
}
