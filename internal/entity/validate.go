package entity

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks an entity's `validate` tags before it is handed to
// storage. On failure the returned error is a validator.ValidationErrors
// and can be translated into a user-facing message by dberr.
func Validate(v any) error {
	return validate.Struct(v)
}
