package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidDefinition = errors.New("invalid catalog definition")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidDefinition ErrorKind = "invalid_definition"
)

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: definition file the error came from
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalidDefinition:
		return target == ErrInvalidDefinition
	}
	return false
}

// FieldError reports a single invalid field in a definition
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Msg)
}

func invalidField(field, format string, args ...any) error {
	return &FieldError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
