package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
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

func (r *PostgresRepo) Create(ctx context.Context, u *entity.User) error {
	const query = `
	INSERT INTO users (id, email, created_at, updated_at)
	VALUES ($1, $2, NOW(), NOW())
	RETURNING created_at, updated_at
	`
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	q := database.QuerierFrom(ctx, r.db)
	return q.QueryRow(ctx, query, u.ID, u.Email).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT id, email, created_at, updated_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	return r.scanOne(ctx, query, email)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `
	SELECT id, email, created_at, updated_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	return r.scanOne(ctx, query, id)
}

func (r *PostgresRepo) UpdateEmail(ctx context.Context, userID, email string) error {
	const query = `
	UPDATE users
	SET email = $2, updated_at = NOW()
	WHERE id = $1
	`
	q := database.QuerierFrom(ctx, r.db)
	tag, err := q.Exec(ctx, query, userID, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) scanOne(ctx context.Context, query string, arg any) (entity.User, error) {
	var u entity.User
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}
