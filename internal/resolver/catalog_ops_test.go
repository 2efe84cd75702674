package resolver

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/catalog"
	"bookshelf/internal/entity"
)

func TestBookAdd(t *testing.T) {
	meta := BookMeta{
		Title:  "Dune",
		ISBN:   "9780441013593",
		Pages:  412,
		ImgURL: "https://example.com/dune.jpg",
	}

	t.Run("invalid token skips all work", func(t *testing.T) {
		env := newTestEnv(t)

		p := env.resolver.BookAdd(context.Background(), "bad-token", meta, []string{"Frank Herbert"})

		assert.Equal(t, []string{"Authentication failed"}, messages(p.Errors))
		assert.Nil(t, p.Book)
	})

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().FindAuthorsByNames(gomock.Any(), []string{"Frank Herbert"}).
			Return([]entity.Author{{ID: "author-1", Name: "Frank Herbert"}}, nil)
		env.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		env.catalogRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(nil)
		env.catalogRepo.EXPECT().AppendBookToAuthor(gomock.Any(), "author-1", gomock.Any()).Return(nil)

		p := env.resolver.BookAdd(context.Background(), env.token(t, "user-1"), meta, []string{"Frank Herbert"})

		require.Empty(t, p.Errors)
		require.NotNil(t, p.Book)
		assert.Equal(t, "Dune", p.Book.Title)
		assert.Equal(t, []string{"author-1"}, p.Book.AuthorIDs)
	})

	t.Run("duplicate isbn becomes a payload error", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().FindAuthorsByNames(gomock.Any(), gomock.Any()).
			Return([]entity.Author{{ID: "author-1", Name: "Frank Herbert"}}, nil)
		env.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		env.catalogRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"})

		p := env.resolver.BookAdd(context.Background(), env.token(t, "user-1"), meta, []string{"Frank Herbert"})

		assert.Equal(t, []string{"Unique field already exists"}, messages(p.Errors))
		assert.Nil(t, p.Book)
	})
}

func TestGetBook(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().GetBook(gomock.Any(), "book-1").
			Return(entity.Book{ID: "book-1", Title: "Dune"}, nil)

		p := env.resolver.GetBook(context.Background(), env.token(t, "user-1"), "book-1")

		require.Empty(t, p.Errors)
		require.NotNil(t, p.Book)
		assert.Equal(t, "Dune", p.Book.Title)
	})

	t.Run("unknown id yields empty payload without error", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().GetBook(gomock.Any(), "ghost").
			Return(entity.Book{}, catalog.ErrNotFound)

		p := env.resolver.GetBook(context.Background(), env.token(t, "user-1"), "ghost")

		assert.Empty(t, p.Errors)
		assert.Nil(t, p.Book)
	})
}

func TestGetBooks(t *testing.T) {
	t.Run("invalid token returns only the auth error", func(t *testing.T) {
		env := newTestEnv(t)

		p := env.resolver.GetBooks(context.Background(), "bad-token")

		assert.Equal(t, []string{"Authentication failed"}, messages(p.Errors))
		assert.Empty(t, p.Books)
	})

	t.Run("empty catalog yields an empty list", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().ListBooks(gomock.Any()).Return([]entity.Book{}, nil)

		p := env.resolver.GetBooks(context.Background(), env.token(t, "user-1"))

		require.Empty(t, p.Errors)
		assert.NotNil(t, p.Books)
		assert.Empty(t, p.Books)
	})
}

func TestGetAuthor(t *testing.T) {
	env := newTestEnv(t)

	env.catalogRepo.EXPECT().GetAuthor(gomock.Any(), "ghost").
		Return(entity.Author{}, catalog.ErrNotFound)

	p := env.resolver.GetAuthor(context.Background(), env.token(t, "user-1"), "ghost")

	assert.Empty(t, p.Errors)
	assert.Nil(t, p.Author)
}

func TestSearch(t *testing.T) {
	book := entity.Book{ID: "book-1", Title: "Dune"}
	author := entity.Author{ID: "author-1", Name: "Frank Herbert"}

	t.Run("books win the tag when present", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().SearchBooksByTitle(gomock.Any(), "dune").
			Return([]entity.Book{book}, nil)

		p := env.resolver.Search(context.Background(), env.token(t, "user-1"), "dune", catalog.CategoryTitle)

		assert.Equal(t, BooksResult, p.Kind)
		assert.Equal(t, []entity.Book{book}, p.Books)
	})

	t.Run("author matches tag as authors", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().SearchAuthorsByName(gomock.Any(), "herbert").
			Return([]entity.Author{author}, nil)

		p := env.resolver.Search(context.Background(), env.token(t, "user-1"), "herbert", catalog.CategoryAuthor)

		assert.Equal(t, AuthorsResult, p.Kind)
		assert.Equal(t, []entity.Author{author}, p.Authors)
	})

	t.Run("no match tags as error", func(t *testing.T) {
		env := newTestEnv(t)

		env.catalogRepo.EXPECT().SearchBooksByISBN(gomock.Any(), "0000000000").
			Return([]entity.Book{}, nil)

		p := env.resolver.Search(context.Background(), env.token(t, "user-1"), "0000000000", catalog.CategoryISBN)

		assert.Equal(t, ErrorResult, p.Kind)
		assert.Empty(t, p.Books)
		assert.Empty(t, p.Authors)
	})

	t.Run("unknown category tags as error", func(t *testing.T) {
		env := newTestEnv(t)

		p := env.resolver.Search(context.Background(), env.token(t, "user-1"), "dune", "genre")

		assert.Equal(t, ErrorResult, p.Kind)
		require.Len(t, p.Errors, 1)
	})

	t.Run("invalid token tags as error without searching", func(t *testing.T) {
		env := newTestEnv(t)

		p := env.resolver.Search(context.Background(), "bad-token", "dune", catalog.CategoryTitle)

		assert.Equal(t, ErrorResult, p.Kind)
		assert.Equal(t, []string{"Authentication failed"}, messages(p.Errors))
	})
}
