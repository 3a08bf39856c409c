package usecase

import (
	"fmt"
	"strings"
)

// ValidationError is one field failing one declared constraint. Inputs are
// checked in full before anything touches storage, so callers get every
// broken field in a single report.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// asError returns nil for an empty report so callers can do
// `if err := in.Validate(); err != nil`.
func (e ValidationErrors) asError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
