package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookshelf/internal/database"
	"bookshelf/internal/dberr"
	"bookshelf/internal/entity"
)

type Service struct {
	repo Repository
	tx   database.Transactor
	log  *zap.Logger
}

func NewService(repo Repository, tx database.Transactor, log *zap.Logger) *Service {
	return &Service{repo: repo, tx: tx, log: log}
}

// CreateBook creates the book together with any authors it references that
// do not exist yet. Author names are a natural key: a name that already has
// an author record resolves to it instead of creating a duplicate.
//
// Author resolution runs before the transaction so that a unique-violation
// from a concurrent insert of the same name can be retried with a fresh
// lookup. The book insert and the author back-reference updates then run in
// one transaction, so a book never ends up referencing authors that do not
// point back at it.
func (s *Service) CreateBook(ctx context.Context, meta entity.Book, authorNames []string) (entity.Book, error) {
	if err := entity.Validate(meta); err != nil {
		return entity.Book{}, err
	}

	authors, err := s.resolveAuthors(ctx, authorNames)
	if err != nil {
		return entity.Book{}, err
	}

	book := meta
	book.ID = uuid.NewString()
	book.AuthorIDs = make([]string, 0, len(authors))
	for _, a := range authors {
		book.AuthorIDs = append(book.AuthorIDs, a.ID)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateBook(ctx, &book); err != nil {
			return err
		}
		for _, a := range authors {
			if err := s.repo.AppendBookToAuthor(ctx, a.ID, book.ID); err != nil {
				return fmt.Errorf("append book to author %s: %w", a.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

// resolveAuthors maps names to author records, inserting the missing ones
// in a single batch. A duplicate-key failure on insert means a concurrent
// CreateBook won the race for the same name, so the lookup is repeated.
func (s *Service) resolveAuthors(ctx context.Context, names []string) ([]entity.Author, error) {
	const maxAttempts = 2

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		found, err := s.repo.FindAuthorsByNames(ctx, names)
		if err != nil {
			return nil, err
		}

		known := make(map[string]bool, len(found))
		for _, a := range found {
			known[a.Name] = true
		}

		var missing []entity.Author
		for _, name := range names {
			if known[name] {
				continue
			}
			known[name] = true
			a := entity.Author{ID: uuid.NewString(), Name: name, BookIDs: []string{}}
			if err := entity.Validate(a); err != nil {
				return nil, err
			}
			missing = append(missing, a)
		}

		if len(missing) == 0 {
			return found, nil
		}

		if err := s.repo.InsertAuthors(ctx, missing); err != nil {
			if dberr.IsUniqueViolation(err) {
				s.log.Debug("author created concurrently, retrying lookup", zap.Error(err))
				lastErr = err
				continue
			}
			return nil, err
		}
		return append(found, missing...), nil
	}
	return nil, lastErr
}

func (s *Service) GetBook(ctx context.Context, id string) (entity.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) GetAuthor(ctx context.Context, id string) (entity.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]entity.Book, error) {
	return s.repo.ListBooks(ctx)
}
