package resolver

import (
	"context"
	"errors"

	"bookshelf/internal/collection"
	"bookshelf/internal/dberr"
	"bookshelf/internal/entity"
)

// statusMessage keeps a rejected status readable for the client; anything
// else goes through the storage translator.
func statusMessage(err error) string {
	if errors.Is(err, collection.ErrInvalidStatus) {
		return err.Error()
	}
	return dberr.Message(err)
}

// AddToCollection puts a book into the user's collection. Adding a book
// already present overwrites its status rather than duplicating the entry.
func (r *Resolver) AddToCollection(ctx context.Context, token, bookID, userID, bookStatus string) *CollectionPayload {
	p := &CollectionPayload{UserBooks: []entity.UserBook{}, Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	entries, err := r.collection.Add(ctx, userID, bookID, bookStatus)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: statusMessage(err)})
		return p
	}

	p.Message = msgBookAdded
	p.UserBooks = entries
	return p
}

// ChangeBookStatus transitions every entry for (userID, bookID) and
// returns the entries it touched; no matching entry is a no-op with an
// empty list.
func (r *Resolver) ChangeBookStatus(ctx context.Context, token, bookID, userID, newStatus string) *CollectionPayload {
	p := &CollectionPayload{UserBooks: []entity.UserBook{}, Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	entries, err := r.collection.ChangeStatus(ctx, userID, bookID, newStatus)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: statusMessage(err)})
		return p
	}

	p.Message = msgStatusChanged
	p.UserBooks = entries
	return p
}

// RemoveFromCollection deletes every entry for (userID, bookID).
func (r *Resolver) RemoveFromCollection(ctx context.Context, token, bookID, userID string) *CollectionPayload {
	p := &CollectionPayload{UserBooks: []entity.UserBook{}, Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	if err := r.collection.Remove(ctx, userID, bookID); err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	p.Message = msgBookRemoved
	return p
}
