// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a shared validate instance. echo calls Validate on every
// c.Validate(i) invocation.
type Validator struct {
	validate *playground.Validate
}

// New builds the wrapper around a single validate instance; the instance
// caches struct metadata and is safe for concurrent use.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
