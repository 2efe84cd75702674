package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/internal/database"
	"bookshelf/internal/entity"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const bookColumns = `id, isbn, title, pages, COALESCE(description, ''), img_url, author_ids, created_at, updated_at`

func (r *PostgresRepo) CreateBook(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (id, isbn, title, pages, description, img_url, author_ids, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING created_at, updated_at
	`
	q := database.QuerierFrom(ctx, r.db)
	return q.QueryRow(ctx, query,
		b.ID, b.ISBN, b.Title, b.Pages, b.Description, b.ImgURL, b.AuthorIDs,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) GetBook(ctx context.Context, id string) (entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1 LIMIT 1`

	q := database.QuerierFrom(ctx, r.db)
	b, err := scanBook(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) ListBooks(ctx context.Context) ([]entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books ORDER BY title`
	return r.queryBooks(ctx, query)
}

func (r *PostgresRepo) FindAuthorsByNames(ctx context.Context, names []string) ([]entity.Author, error) {
	const query = `
	SELECT id, name, book_ids, created_at, updated_at
	FROM authors
	WHERE name = ANY($1)
	`
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, query, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuthors(rows)
}

func (r *PostgresRepo) InsertAuthors(ctx context.Context, authors []entity.Author) error {
	const query = `
	INSERT INTO authors (id, name, book_ids, created_at, updated_at)
	VALUES ($1, $2, $3, NOW(), NOW())
	`
	q := database.QuerierFrom(ctx, r.db)

	batch := &pgx.Batch{}
	for _, a := range authors {
		batch.Queue(query, a.ID, a.Name, a.BookIDs)
	}

	var results pgx.BatchResults
	switch conn := q.(type) {
	case pgx.Tx:
		results = conn.SendBatch(ctx, batch)
	default:
		results = r.db.SendBatch(ctx, batch)
	}
	defer results.Close()

	for range authors {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepo) AppendBookToAuthor(ctx context.Context, authorID, bookID string) error {
	const query = `
	UPDATE authors
	SET book_ids = array_append(book_ids, $2), updated_at = NOW()
	WHERE id = $1
	`
	q := database.QuerierFrom(ctx, r.db)
	tag, err := q.Exec(ctx, query, authorID, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) GetAuthor(ctx context.Context, id string) (entity.Author, error) {
	const query = `
	SELECT id, name, book_ids, created_at, updated_at
	FROM authors
	WHERE id = $1
	LIMIT 1
	`
	var a entity.Author
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BookIDs, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) SearchBooksByTitle(ctx context.Context, search string) ([]entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE title ILIKE '%' || $1 || '%' ORDER BY title`
	return r.queryBooks(ctx, query, search)
}

func (r *PostgresRepo) SearchBooksByISBN(ctx context.Context, isbn string) ([]entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`
	return r.queryBooks(ctx, query, isbn)
}

func (r *PostgresRepo) SearchAuthorsByName(ctx context.Context, search string) ([]entity.Author, error) {
	const query = `
	SELECT id, name, book_ids, created_at, updated_at
	FROM authors
	WHERE name ILIKE '%' || $1 || '%'
	ORDER BY name
	`
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuthors(rows)
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(&b.ID, &b.ISBN, &b.Title, &b.Pages, &b.Description, &b.ImgURL, &b.AuthorIDs, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func scanAuthors(rows pgx.Rows) ([]entity.Author, error) {
	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BookIDs, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}
