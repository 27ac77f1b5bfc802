// Package validator wraps go-playground/validator with the rules used across
// txtrack and a single error format.
//
// Besides the built-in tags it registers:
//
//   - txhash: a 0x-prefixed, 32-byte hex transaction hash.
//   - amount: a non-negative base-10 integer of arbitrary size (e.g. wei).
package validator

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the shared instance, configured on package load.
var validator *gvalidator.Validate

// errStringFormat describes a single field failure.
//
// Example: "'Hash': value '0x' does not meet the requirements for the 'txhash' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var txHashPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{64}$`)

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	validator.RegisterValidation("txhash", func(fl gvalidator.FieldLevel) bool {
		return isTxHash(fl.Field().String())
	})
	validator.RegisterValidation("amount", func(fl gvalidator.FieldLevel) bool {
		_, ok := ParseAmount(fl.Field().String())
		return ok
	})
}

// isTxHash reports whether s is a 0x-prefixed 32-byte hex hash.
func isTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// ParseAmount parses a non-negative base-10 integer of any size.
func ParseAmount(s string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}

	return v, true
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per failing field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject input
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
