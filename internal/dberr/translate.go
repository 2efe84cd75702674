// Package dberr turns raw persistence and validation failures into the
// user-facing messages carried in operation payloads.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"

	msgEmailTaken  = "This email is already taken."
	msgUniqueField = "Unique field already exists"
	msgGeneric     = "Something went wrong"
)

// Message translates err into a single user-facing string.
//
// Unique-index violations on the email index get a dedicated message, any
// other unique violation a generic one. Validation failures surface the
// first field-level message. Everything else the storage layer reports
// collapses to a catch-all.
func Message(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return msgEmailTaken
			}
			return msgUniqueField
		}
		return msgGeneric
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return fieldMessage(vErrs[0])
	}

	return msgGeneric
}

// IsUniqueViolation reports whether err is a duplicate-key failure, used by
// the catalog service to detect authors created by a concurrent call.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		if field == "Email" {
			return "Email address is required"
		}
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
