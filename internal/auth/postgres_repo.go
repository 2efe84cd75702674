package auth

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

func (r *PostgresRepo) Create(ctx context.Context, cred *entity.Credential) error {
	const query = `
	INSERT INTO credentials (user_id, password_hash, updated_at)
	VALUES ($1, $2, NOW())
	RETURNING updated_at
	`
	q := database.QuerierFrom(ctx, r.db)
	return q.QueryRow(ctx, query, cred.UserID, cred.PasswordHash).Scan(&cred.UpdatedAt)
}

func (r *PostgresRepo) GetByUserID(ctx context.Context, userID string) (entity.Credential, error) {
	const query = `
	SELECT user_id, password_hash, updated_at
	FROM credentials
	WHERE user_id = $1
	`
	var cred entity.Credential
	q := database.QuerierFrom(ctx, r.db)
	err := q.QueryRow(ctx, query, userID).Scan(&cred.UserID, &cred.PasswordHash, &cred.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Credential{}, ErrNotFound
		}
		return entity.Credential{}, err
	}
	return cred, nil
}

func (r *PostgresRepo) Replace(ctx context.Context, userID, passwordHash string) error {
	const query = `
	UPDATE credentials
	SET password_hash = $2, updated_at = NOW()
	WHERE user_id = $1
	`
	q := database.QuerierFrom(ctx, r.db)
	tag, err := q.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
