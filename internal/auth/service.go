package auth

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/entity"
)

// Service is the credential store: it owns hashing and keeps password
// digests in their own table, one row per user.
type Service struct {
	repo CredentialRepository
}

func NewService(repo CredentialRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID, plaintext string) error {
	hash, err := HashPassword(plaintext)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, &entity.Credential{UserID: userID, PasswordHash: hash})
}

// Replace overwrites the stored digest. ErrNotFound when the user has no
// credential row.
func (s *Service) Replace(ctx context.Context, userID, plaintext string) error {
	hash, err := HashPassword(plaintext)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Replace(ctx, userID, hash)
}

// Verify reports whether plaintext matches the digest stored for userID.
// A missing credential row verifies as false, not as an error, so login
// cannot leak which of email/password was wrong.
func (s *Service) Verify(ctx context.Context, userID, plaintext string) (bool, error) {
	cred, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return VerifyPassword(cred.PasswordHash, plaintext), nil
}
