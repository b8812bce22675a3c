package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator used at the API boundary. All rules live in
// struct tags; there is no cross-field arithmetic to check because client
// totals are recomputed server-side rather than verified.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
