package catalog

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookshelf/internal/database"
	"bookshelf/internal/entity"
)

func newTestService(t *testing.T) (*Service, *MockRepository, *database.MockTransactor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	tx := database.NewMockTransactor(ctrl)
	return NewService(repo, tx, zap.NewNop()), repo, tx
}

func passThrough(tx *database.MockTransactor) {
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func validMeta() entity.Book {
	return entity.Book{
		ISBN:   "1234567890",
		Title:  "The Go Programming Language",
		Pages:  380,
		ImgURL: "https://example.com/gopl.jpg",
	}
}

func TestService_CreateBook_ReusesExistingAuthor(t *testing.T) {
	svc, repo, tx := newTestService(t)
	existing := entity.Author{ID: "author-1", Name: "Jane Doe"}

	repo.EXPECT().FindAuthorsByNames(gomock.Any(), []string{"Jane Doe"}).
		Return([]entity.Author{existing}, nil)
	passThrough(tx)
	repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().AppendBookToAuthor(gomock.Any(), "author-1", gomock.Any()).Return(nil)

	book, err := svc.CreateBook(context.Background(), validMeta(), []string{"Jane Doe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"author-1"}, book.AuthorIDs)
	assert.NotEmpty(t, book.ID)
}

func TestService_CreateBook_InsertsMissingAuthors(t *testing.T) {
	svc, repo, tx := newTestService(t)
	existing := entity.Author{ID: "author-1", Name: "Jane Doe"}

	repo.EXPECT().FindAuthorsByNames(gomock.Any(), []string{"Jane Doe", "John Smith"}).
		Return([]entity.Author{existing}, nil)

	var inserted []entity.Author
	repo.EXPECT().InsertAuthors(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, authors []entity.Author) error {
			inserted = authors
			return nil
		})

	passThrough(tx)
	repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().AppendBookToAuthor(gomock.Any(), "author-1", gomock.Any()).Return(nil)
	repo.EXPECT().AppendBookToAuthor(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	book, err := svc.CreateBook(context.Background(), validMeta(), []string{"Jane Doe", "John Smith"})
	require.NoError(t, err)

	require.Len(t, inserted, 1)
	assert.Equal(t, "John Smith", inserted[0].Name)
	assert.Len(t, book.AuthorIDs, 2)
	assert.Contains(t, book.AuthorIDs, "author-1")
	assert.Contains(t, book.AuthorIDs, inserted[0].ID)
}

func TestService_CreateBook_RetriesOnConcurrentAuthorInsert(t *testing.T) {
	svc, repo, tx := newTestService(t)
	winner := entity.Author{ID: "author-9", Name: "Jane Doe"}

	// First pass: name unknown, insert loses the race.
	repo.EXPECT().FindAuthorsByNames(gomock.Any(), []string{"Jane Doe"}).
		Return(nil, nil)
	repo.EXPECT().InsertAuthors(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "authors_name_key"})

	// Retry resolves the author created by the concurrent call.
	repo.EXPECT().FindAuthorsByNames(gomock.Any(), []string{"Jane Doe"}).
		Return([]entity.Author{winner}, nil)

	passThrough(tx)
	repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().AppendBookToAuthor(gomock.Any(), "author-9", gomock.Any()).Return(nil)

	book, err := svc.CreateBook(context.Background(), validMeta(), []string{"Jane Doe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"author-9"}, book.AuthorIDs)
}

func TestService_CreateBook_ValidatesMeta(t *testing.T) {
	svc, _, _ := newTestService(t)

	meta := validMeta()
	meta.Title = ""
	_, err := svc.CreateBook(context.Background(), meta, []string{"Jane Doe"})
	assert.Error(t, err)
}

func TestService_CreateBook_DuplicateISBN(t *testing.T) {
	svc, repo, tx := newTestService(t)

	repo.EXPECT().FindAuthorsByNames(gomock.Any(), gomock.Any()).
		Return([]entity.Author{{ID: "author-1", Name: "Jane Doe"}}, nil)
	passThrough(tx)
	repo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"})

	_, err := svc.CreateBook(context.Background(), validMeta(), []string{"Jane Doe"})
	assert.Error(t, err)
}

func TestService_Search(t *testing.T) {
	svc, repo, _ := newTestService(t)
	book := entity.Book{ID: "book-1", Title: "Dune"}
	author := entity.Author{ID: "author-1", Name: "Frank Herbert"}

	t.Run("title", func(t *testing.T) {
		repo.EXPECT().SearchBooksByTitle(gomock.Any(), "dune").Return([]entity.Book{book}, nil)

		res, err := svc.Search(context.Background(), "dune", CategoryTitle)
		require.NoError(t, err)
		assert.Equal(t, []entity.Book{book}, res.Books)
		assert.Empty(t, res.Authors)
	})

	t.Run("isbn", func(t *testing.T) {
		repo.EXPECT().SearchBooksByISBN(gomock.Any(), "1234567890").Return([]entity.Book{book}, nil)

		res, err := svc.Search(context.Background(), "1234567890", CategoryISBN)
		require.NoError(t, err)
		assert.Equal(t, []entity.Book{book}, res.Books)
	})

	t.Run("author", func(t *testing.T) {
		repo.EXPECT().SearchAuthorsByName(gomock.Any(), "herbert").Return([]entity.Author{author}, nil)

		res, err := svc.Search(context.Background(), "herbert", CategoryAuthor)
		require.NoError(t, err)
		assert.Equal(t, []entity.Author{author}, res.Authors)
		assert.Empty(t, res.Books)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "dune", "genre")
		assert.Error(t, err)
	})
}
