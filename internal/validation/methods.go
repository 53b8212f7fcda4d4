// Package validation declares the structural and semantic constraints on
// incoming self-service submissions. It gates the pipeline: no fee lookup
// or remote call happens for a submission that fails here.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator collects field errors keyed by field path.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator. The first error per field wins.
func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// MinLength checks if a string has at least n characters.
func (v *Validator) MinLength(field, value string, n int) {
	v.Check(len(value) >= n, field, fmt.Sprintf("must be at least %d characters long", n))
}

// MaxLength checks if a string has at most n characters.
func (v *Validator) MaxLength(field, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// In checks that the value is one of the allowed set.
func (v *Validator) In(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, "is not an allowed value")
}

// NotIn checks that the value does not collide with any taken value.
func (v *Validator) NotIn(field, value string, taken []string) {
	for _, t := range taken {
		if value == t {
			v.AddError(field, "has already been used")
			return
		}
	}
}

// Matches checks the value against a pattern.
func (v *Validator) Matches(field, value string, re *regexp.Regexp, message string) {
	v.Check(re.MatchString(value), field, message)
}

// Numeric checks that the value consists of digits only.
func (v *Validator) Numeric(field, value string) {
	v.Matches(field, value, numericRegex, "must be numeric")
}
