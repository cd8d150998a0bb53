package recgo

import "github.com/hupe1980/recgo/value"

type options struct {
	defaults  []value.Value
	validator Validator
	indexable bool
	logger    *Logger
}

// Option configures schema definition behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; a schema is fully described by Define plus its options.
type Option func(*options)

// WithDefaults configures positional default values, aligned to the field
// order. Fewer defaults than fields means the remaining fields default to
// value.Null().
func WithDefaults(defaults ...value.Value) Option {
	return func(o *options) {
		o.defaults = defaults
	}
}

// WithValidator configures the validator consulted on every field write,
// both at construction time and on later mutation.
//
// The validator receives the field name and the candidate value and either
// returns the value to store (possibly an adjusted alternative) or an error.
// On error the write is aborted and the error propagates unmodified.
func WithValidator(v Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

// WithoutIndexing defines the schema as named-access only: records reject
// positional, slice and containment operations and expose their values only
// through field access and the tuple/dict projections.
func WithoutIndexing() Option {
	return func(o *options) {
		o.indexable = false
	}
}

// WithLogger configures the logger used for schema and write diagnostics.
//
// If nil is passed, the noop logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
