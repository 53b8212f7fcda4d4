// Package errors defines the error shapes surfaced to API callers.
package errors

import "fmt"

// APIError is a user-visible failure: a human-readable description and
// message plus the status code the caller should see. No internals leak
// through it.
type APIError struct {
	Description string `json:"description"`
	Message     string `json:"message"`
	StatusCode  int    `json:"statusCode"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Description, e.Message, e.StatusCode)
}

func New(description, message string, statusCode int) *APIError {
	return &APIError{Description: description, Message: message, StatusCode: statusCode}
}

// Unspecified is the fallback when a remote failure carries no usable
// payload.
func Unspecified() *APIError {
	return &APIError{
		Description: "Error!",
		Message:     "Something went wrong, please try again later!",
		StatusCode:  500,
	}
}

// ValidationError carries the field errors collected by the submission
// schema. It is terminal: nothing past validation runs.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
