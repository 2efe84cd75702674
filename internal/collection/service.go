package collection

import (
	"context"

	"bookshelf/internal/entity"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add puts the book into the user's collection with the given status and
// returns the updated entry list. Adding a book that is already present
// overwrites its status instead of creating a second entry.
func (s *Service) Add(ctx context.Context, userID, bookID, status string) ([]entity.UserBook, error) {
	if err := ValidateStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, userID, bookID, status); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// ChangeStatus moves every entry for (userID, bookID) to newStatus and
// returns the affected entries. When the user has no entry for the book
// this is a no-op returning an empty list.
func (s *Service) ChangeStatus(ctx context.Context, userID, bookID, newStatus string) ([]entity.UserBook, error) {
	if err := ValidateStatus(newStatus); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, userID, bookID, newStatus)
}

func (s *Service) Remove(ctx context.Context, userID, bookID string) error {
	return s.repo.Remove(ctx, userID, bookID)
}

// EntriesFor returns the user's entries, filtered to statusFilter unless it
// is empty or the "All" sentinel. Filtering is a read-time projection.
func (s *Service) EntriesFor(ctx context.Context, userID, statusFilter string) ([]entity.UserBook, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if statusFilter == "" || statusFilter == StatusFilterAll {
		return entries, nil
	}

	filtered := make([]entity.UserBook, 0, len(entries))
	for _, e := range entries {
		if e.Status == statusFilter {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
