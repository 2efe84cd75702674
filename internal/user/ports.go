package user

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
	UpdateEmail(ctx context.Context, userID, email string) error
}
