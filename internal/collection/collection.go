// Package collection manages each user's personal list of (book, status)
// entries.
package collection

import (
	"errors"
	"fmt"
)

// Reading statuses. A (user, book) pair with no entry is implicitly absent.
const (
	StatusPlanToRead = "Plan to read"
	StatusReading    = "Reading"
	StatusCompleted  = "Completed"
)

// StatusFilterAll is the sentinel filter value meaning "no filtering".
const StatusFilterAll = "All"

// ErrInvalidStatus marks a status outside the recognized set. Callers
// match on it to show the message as-is instead of translating it.
var ErrInvalidStatus = errors.New("invalid status")

func ValidateStatus(status string) error {
	switch status {
	case StatusPlanToRead, StatusReading, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
}
