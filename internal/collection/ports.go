package collection

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	// Upsert adds the entry or, when the book is already in the user's
	// collection, overwrites its status.
	Upsert(ctx context.Context, userID, bookID, status string) error

	// UpdateStatus transitions every entry matching (userID, bookID) and
	// returns the entries it touched. No match means no-op and an empty
	// result.
	UpdateStatus(ctx context.Context, userID, bookID, status string) ([]entity.UserBook, error)

	// Remove deletes every entry matching (userID, bookID).
	Remove(ctx context.Context, userID, bookID string) error

	ListByUser(ctx context.Context, userID string) ([]entity.UserBook, error)
}
