package catalog

import (
	"context"
	"fmt"

	"bookshelf/internal/entity"
)

// Search categories, each routed to a different indexed field.
const (
	CategoryTitle  = "title"
	CategoryISBN   = "isbn"
	CategoryAuthor = "author"
)

// SearchResult holds the matches for whichever side of the catalog the
// category routed to. At most one of the two slices is populated.
type SearchResult struct {
	Books   []entity.Book
	Authors []entity.Author
}

// Search routes the query by category: title and author are
// case-insensitive substring matches, isbn is an exact match.
func (s *Service) Search(ctx context.Context, query, category string) (SearchResult, error) {
	switch category {
	case CategoryTitle:
		books, err := s.repo.SearchBooksByTitle(ctx, query)
		return SearchResult{Books: books}, err
	case CategoryISBN:
		books, err := s.repo.SearchBooksByISBN(ctx, query)
		return SearchResult{Books: books}, err
	case CategoryAuthor:
		authors, err := s.repo.SearchAuthorsByName(ctx, query)
		return SearchResult{Authors: authors}, err
	default:
		return SearchResult{}, fmt.Errorf("unknown search category: %s", category)
	}
}
