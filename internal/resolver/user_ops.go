package resolver

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"bookshelf/internal/auth"
	"bookshelf/internal/dberr"
	"bookshelf/internal/entity"
	"bookshelf/internal/user"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserCreate registers a new user with its credential and returns a signed
// token. Independent validation failures accumulate before the operation
// short-circuits.
func (r *Resolver) UserCreate(ctx context.Context, email, password string) *UserPayload {
	p := &UserPayload{Errors: []Error{}}

	if email == "" || password == "" {
		p.Errors = append(p.Errors, Error{Message: msgInvalidCredentials})
	}
	if len(password) < minPasswordLen {
		p.Errors = append(p.Errors, Error{Message: msgPasswordTooShort})
	}
	if len(p.Errors) > 0 {
		return p
	}

	u := entity.User{Email: normalizeEmail(email)}
	if err := entity.Validate(u); err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	// User and credential land together or not at all, so a failed
	// credential insert cannot strand an email that can never log in.
	err := r.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := r.users.Create(ctx, &u); err != nil {
			return err
		}
		return r.creds.Create(ctx, u.ID, password)
	})
	if err != nil {
		r.log.Error("register user", zap.String("email", u.Email), zap.Error(err))
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	token, err := r.tokens.Issue(u.ID)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	u.Books = []entity.UserBook{}
	p.User = &u
	p.Token = token
	return p
}

// UserLogin checks the password and returns a token. A wrong email and a
// wrong password produce the same message.
func (r *Resolver) UserLogin(ctx context.Context, email, password string) *UserPayload {
	p := &UserPayload{Errors: []Error{}}

	if email == "" || password == "" {
		p.Errors = append(p.Errors, Error{Message: msgInvalidCredentials})
		return p
	}

	u, err := r.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			p.Errors = append(p.Errors, Error{Message: msgLoginMismatch})
		} else {
			p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		}
		return p
	}

	ok, err := r.creds.Verify(ctx, u.ID, password)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}
	if !ok {
		p.Errors = append(p.Errors, Error{Message: msgLoginMismatch})
		return p
	}

	token, err := r.tokens.Issue(u.ID)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	entries, err := r.collection.EntriesFor(ctx, u.ID, "")
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}
	u.Books = entries

	p.User = &u
	p.Token = token
	return p
}

// ChangeEmail re-validates uniqueness before updating the address.
func (r *Resolver) ChangeEmail(ctx context.Context, token, email, emailConfirm, userID string) *EmailPayload {
	p := &EmailPayload{Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	if email == "" || emailConfirm == "" {
		p.Errors = append(p.Errors, Error{Message: msgInvalidEmail})
	}
	if email != emailConfirm {
		p.Errors = append(p.Errors, Error{Message: msgEmailsDiffer})
	}
	if len(p.Errors) > 0 {
		return p
	}

	newEmail := normalizeEmail(email)
	if err := entity.Validate(entity.User{ID: userID, Email: newEmail}); err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	if _, err := r.users.GetByEmail(ctx, newEmail); err == nil {
		p.Errors = append(p.Errors, Error{Message: msgEmailTaken})
		return p
	} else if !errors.Is(err, user.ErrNotFound) {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}

	if err := r.users.UpdateEmail(ctx, userID, newEmail); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			p.Errors = append(p.Errors, Error{Message: msgUserNotFound})
		} else {
			// A concurrent ChangeEmail can still hit the unique index.
			p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		}
		return p
	}

	p.Message = msgEmailChanged
	p.Email = newEmail
	return p
}

// ChangePassword replaces the stored credential digest.
func (r *Resolver) ChangePassword(ctx context.Context, token, password, passwordConfirm, userID string) *PasswordPayload {
	p := &PasswordPayload{Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	if password == "" {
		p.Errors = append(p.Errors, Error{Message: msgInvalidPassword})
	}
	if len(password) < minPasswordLen {
		p.Errors = append(p.Errors, Error{Message: msgPasswordTooShort})
	}
	if password != passwordConfirm {
		p.Errors = append(p.Errors, Error{Message: msgPasswordsDiffer})
	}
	if len(p.Errors) > 0 {
		return p
	}

	if err := r.creds.Replace(ctx, userID, password); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			p.Errors = append(p.Errors, Error{Message: msgUserNotFound})
		} else {
			p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		}
		return p
	}

	p.Message = msgPasswordUpdated
	return p
}

// GetUser returns the user with its collection, optionally projected to a
// single status. "All" or an absent filter means unfiltered.
func (r *Resolver) GetUser(ctx context.Context, token, userID, bookFilter string) *UserPayload {
	p := &UserPayload{Errors: []Error{}}

	if errs := r.gate(token); errs != nil {
		p.Errors = errs
		return p
	}

	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		}
		return p
	}

	entries, err := r.collection.EntriesFor(ctx, userID, bookFilter)
	if err != nil {
		p.Errors = append(p.Errors, Error{Message: dberr.Message(err)})
		return p
	}
	u.Books = entries

	p.User = &u
	return p
}
