package command

import "strings"

// ValidationError reports the first violated rule of a fail-fast validator.
// Field names the offending command field in its wire spelling.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors aggregates every violated rule of a collect-all validator.
// Messages preserves rule evaluation order.
type ValidationErrors struct {
	Messages []string
}

func (e *ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
