package recgo

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/hupe1980/recgo/value"
)

// Validator is consulted on every field write. It receives the field name and
// the candidate value and returns the value to store, which may be an
// adjusted alternative, or an error rejecting the write.
//
// Validators must be pure: recgo calls them at construction time and on every
// later mutation, and stores exactly what they return.
type Validator func(field string, v value.Value) (value.Value, error)

// Schema is the immutable definition of a record type: display name, field
// order, defaults, validator and the indexing capability.
//
// A Schema is created once by Define and never changes afterwards, so it may
// be shared and read concurrently without synchronization. Records produced
// from it carry no such guarantee.
type Schema struct {
	name        string
	fields      []string
	index       map[string]int
	defaults    []value.Value
	validator   Validator
	indexable   bool
	fingerprint uint64
	logger      *Logger
}

// Define produces a record schema with the given display name and fields.
//
// fields must contain at least one unique field name. As a convenience a
// single whitespace-separated string is split into its parts, so
// Define("Point", []string{"x y"}) and Define("Point", []string{"x", "y"})
// are equivalent.
//
// Schemas are indexable by default: their records support positional, slice
// and containment access in declared field order. WithoutIndexing restricts
// records to named access plus the tuple/dict projections.
func Define(name string, fields []string, optFns ...Option) (*Schema, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if len(fields) == 1 && strings.ContainsFunc(fields[0], unicode.IsSpace) {
		fields = strings.Fields(fields[0])
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	o := options{
		indexable: true,
		logger:    NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if len(o.defaults) > len(fields) {
		return nil, &ErrArityExceeded{Schema: name, Max: len(fields), Got: len(o.defaults)}
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f == "" {
			return nil, ErrEmptyFieldName
		}
		if _, ok := index[f]; ok {
			return nil, &ErrDuplicateField{Field: f}
		}
		index[f] = i
	}

	s := &Schema{
		name:        name,
		fields:      append([]string(nil), fields...),
		index:       index,
		defaults:    append([]value.Value(nil), o.defaults...),
		validator:   o.validator,
		indexable:   o.indexable,
		fingerprint: fingerprint(name, fields),
		logger:      o.logger.WithSchema(name),
	}

	s.logger.Debug("schema defined",
		"fields", len(s.fields),
		"indexable", s.indexable,
	)

	return s, nil
}

// MustDefine is like Define but panics on error. It simplifies package-level
// schema variables where the definition is known to be valid.
func MustDefine(name string, fields []string, optFns ...Option) *Schema {
	s, err := Define(name, fields, optFns...)
	if err != nil {
		panic(err)
	}
	return s
}

// fingerprint computes the structural identity of a schema: display name plus
// field names in declared order. Equality and ordering of records are gated
// on it, so two independently defined schemas compare as the same type only
// when both agree.
func fingerprint(name string, fields []string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	for _, f := range fields {
		_, _ = d.Write([]byte{0x1f})
		_, _ = d.WriteString(f)
	}
	return d.Sum64()
}

// Name returns the schema's display name.
func (s *Schema) Name() string { return s.name }

// Fields returns the field names in declared order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.fields...)
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Indexable reports whether records of this schema support positional access.
func (s *Schema) Indexable() bool { return s.indexable }

// HasField reports whether the schema declares the given field.
func (s *Schema) HasField(field string) bool {
	_, ok := s.index[field]
	return ok
}

// Fingerprint returns the structural identity of the schema. Two schemas
// share a fingerprint exactly when they have the same display name and the
// same field names in the same order.
func (s *Schema) Fingerprint() uint64 { return s.fingerprint }

// String renders the schema as Name(field1, field2, ...).
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString(s.name)
	sb.WriteByte('(')
	for i, f := range s.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f)
	}
	sb.WriteByte(')')
	return sb.String()
}
