package recgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/recgo/value"
)

var (
	// ErrEmptyName is returned when a schema is defined without a name.
	ErrEmptyName = errors.New("schema name must not be empty")

	// ErrNoFields is returned when a schema is defined without fields.
	ErrNoFields = errors.New("schema requires at least one field")

	// ErrEmptyFieldName is returned when a schema is defined with an empty
	// field name.
	ErrEmptyFieldName = errors.New("field name must not be empty")

	// ErrInvalidStep is returned when a slice operation uses a zero step.
	ErrInvalidStep = errors.New("slice step must not be zero")
)

// ErrDuplicateField indicates a schema definition with a repeated field name.
type ErrDuplicateField struct {
	Field string
}

func (e *ErrDuplicateField) Error() string {
	return fmt.Sprintf("duplicate field %q", e.Field)
}

// ErrArityExceeded indicates a construction call with more values than the
// schema has fields.
type ErrArityExceeded struct {
	Schema string
	Max    int
	Got    int
}

func (e *ErrArityExceeded) Error() string {
	return fmt.Sprintf("%s accepts up to %d values; got %d", e.Schema, e.Max, e.Got)
}

// ErrUnknownField indicates a reference to a field name that is not part of
// the schema.
type ErrUnknownField struct {
	Schema string
	Field  string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Schema, e.Field)
}

// ErrIndexOutOfRange indicates an out-of-range positional access.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for %d fields", e.Index, e.Length)
}

// ErrNotIndexable indicates a positional operation on a schema defined
// without indexing.
type ErrNotIndexable struct {
	Schema string
	Op     string
}

func (e *ErrNotIndexable) Error() string {
	return fmt.Sprintf("%s does not support %s: schema is not indexable", e.Schema, e.Op)
}

// ErrDeleteUnsupported indicates an attempt to delete a record field. The
// field set is closed for the lifetime of a record, so deletion always fails.
type ErrDeleteUnsupported struct {
	Schema string
	Field  string
}

func (e *ErrDeleteUnsupported) Error() string {
	return fmt.Sprintf("%s does not support field deletion (field %q)", e.Schema, e.Field)
}

// ErrValidation indicates a validator rejected a candidate value.
//
// Validators may return any error; this type is provided for the common case
// and carries the offending field and value for diagnosis. The original
// underlying error (if any) can be accessed via errors.Unwrap.
type ErrValidation struct {
	Field  string
	Value  value.Value
	Reason string
	cause  error
}

// NewValidationError creates an ErrValidation for the given field and value.
func NewValidationError(field string, v value.Value, reason string) *ErrValidation {
	return &ErrValidation{Field: field, Value: v, Reason: reason}
}

func (e *ErrValidation) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid value for %s: %s (got %s)", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Value)
}

func (e *ErrValidation) Unwrap() error { return e.cause }
