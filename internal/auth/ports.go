package auth

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

var ErrNotFound = errors.New("credential not found")

type CredentialRepository interface {
	Create(ctx context.Context, cred *entity.Credential) error
	GetByUserID(ctx context.Context, userID string) (entity.Credential, error)
	Replace(ctx context.Context, userID, passwordHash string) error
}
