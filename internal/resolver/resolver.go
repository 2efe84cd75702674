// Package resolver implements the catalog's operations: every operation
// takes its arguments plus a bearer token, runs against the services, and
// returns a payload whose error list carries anything that went wrong.
package resolver

import (
	"go.uber.org/zap"

	"bookshelf/internal/auth"
	"bookshelf/internal/catalog"
	"bookshelf/internal/collection"
	"bookshelf/internal/database"
	"bookshelf/internal/user"
)

// User-facing messages, kept stable because clients match on them.
const (
	msgAuthFailed         = "Authentication failed"
	msgInvalidCredentials = "Invalid email or password"
	msgPasswordTooShort   = "Password is too short"
	msgLoginMismatch      = "Email and password don't match"
	msgInvalidEmail       = "Invalid email"
	msgEmailsDiffer       = "Emails are different"
	msgEmailTaken         = "Email is already taken"
	msgEmailChanged       = "Email has been changed"
	msgInvalidPassword    = "Invalid password"
	msgPasswordsDiffer    = "Passwords don't match"
	msgPasswordUpdated    = "Password has been updated"
	msgBookAdded          = "Book has been added to your collection"
	msgStatusChanged      = "Status changed"
	msgBookRemoved        = "Book has been deleted"
	msgUserNotFound       = "User not found"
)

const minPasswordLen = 6

type Resolver struct {
	tokens     *auth.TokenManager
	creds      *auth.Service
	users      user.Repository
	catalog    *catalog.Service
	collection *collection.Service
	tx         database.Transactor
	log        *zap.Logger
}

func New(
	tokens *auth.TokenManager,
	creds *auth.Service,
	users user.Repository,
	cat *catalog.Service,
	col *collection.Service,
	tx database.Transactor,
	log *zap.Logger,
) *Resolver {
	return &Resolver{
		tokens:     tokens,
		creds:      creds,
		users:      users,
		catalog:    cat,
		collection: col,
		tx:         tx,
		log:        log,
	}
}

// gate verifies the bearer token before anything else runs. A non-nil
// result means the operation must return it as the payload's entire error
// list without touching storage.
func (r *Resolver) gate(token string) []Error {
	if _, err := r.tokens.Verify(token); err != nil {
		return []Error{{Message: msgAuthFailed}}
	}
	return nil
}
