package collection

import (
	"context"

	"github.com/google/uuid"
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

func (r *PostgresRepo) Upsert(ctx context.Context, userID, bookID, status string) error {
	const query = `
	INSERT INTO user_books (id, user_id, book_id, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NOW(), NOW())
	ON CONFLICT (user_id, book_id)
	DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`
	q := database.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx, query, uuid.NewString(), userID, bookID, status)
	return err
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, userID, bookID, status string) ([]entity.UserBook, error) {
	const query = `
	UPDATE user_books
	SET status = $3, updated_at = NOW()
	WHERE user_id = $1 AND book_id = $2
	RETURNING id, book_id, status
	`
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, query, userID, bookID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.UserBook{}
	for rows.Next() {
		var e entity.UserBook
		if err := rows.Scan(&e.ID, &e.BookID, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepo) Remove(ctx context.Context, userID, bookID string) error {
	const query = `DELETE FROM user_books WHERE user_id = $1 AND book_id = $2`

	q := database.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx, query, userID, bookID)
	return err
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]entity.UserBook, error) {
	const query = `
	SELECT id, book_id, status
	FROM user_books
	WHERE user_id = $1
	ORDER BY created_at
	`
	q := database.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.UserBook{}
	for rows.Next() {
		var e entity.UserBook
		if err := rows.Scan(&e.ID, &e.BookID, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
