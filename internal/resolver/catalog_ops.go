package resolver

import (
	"context"
	"errors"

	"bookshelf/internal/catalog"
	"bookshelf/internal/dberr"
	"bookshelf/internal/entity"
)

// BookMeta carries the client-supplied fields of a new book.
type BookMeta struct {
	Title       string
	ISBN        string
	Pages       int
	Description string
	ImgURL      string
}

// BookAdd creates a book, resolving its author names against existing
// records so that a repeated name never produces a second author.
func (r *Resolver) BookAdd(ctx context.Context, token string, meta BookMeta, authorNames []string) *BookPayload {
	p := &BookPayload{Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	book, err := r.catalog.CreateBook(ctx, entity.Book{
		Title:       meta.Title,
		ISBN:        meta.ISBN,
		Pages:       meta.Pages,
		Description: meta.Description,
		ImgURL:      meta.ImgURL,
	}, authorNames)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	p.Book = &book
	return p
}

// GetBook looks up one book. An unknown id yields an empty payload field,
// not an error.
func (r *Resolver) GetBook(ctx context.Context, token, bookID string) *BookPayload {
	p := &BookPayload{Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	book, err := r.catalog.GetBook(ctx, bookID)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		}
		return p
	}

	p.Book = &book
	return p
}

func (r *Resolver) GetBooks(ctx context.Context, token string) *BooksPayload {
	p := &BooksPayload{Books: []entity.Book{}, Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	books, err := r.catalog.ListBooks(ctx)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}
	if books != nil {
		p.Books = books
	}
	return p
}

func (r *Resolver) GetAuthor(ctx context.Context, token, authorID string) *AuthorPayload {
	p := &AuthorPayload{Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	author, err := r.catalog.GetAuthor(ctx, authorID)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		}
		return p
	}

	p.Author = &author
	return p
}

// Search routes the query to one indexed field and tags the result shape.
func (r *Resolver) Search(ctx context.Context, token, data, category string) *SearchPayload {
	p := &SearchPayload{Errors: []Error{}}
	defer p.classify()

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	result, err := r.catalog.Search(ctx, data, category)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	p.Books = result.Books
	p.Authors = result.Authors
	return p
}
