package recgo

import (
	"strings"

	"github.com/hupe1980/recgo/value"
)

// NamedValue pairs a field name with a value for named construction
// arguments. Named values are an ordered list rather than a map because
// their application order is observable through the validator.
type NamedValue struct {
	Name  string
	Value value.Value
}

// Named creates a NamedValue for use with Schema.New.
func Named(name string, v value.Value) NamedValue {
	return NamedValue{Name: name, Value: v}
}

// Record is a mutable instance of a Schema holding exactly one value per
// field. The field set is fixed for the record's lifetime; only values
// change, always through the schema's validator when one is configured.
//
// Records hold mutable state and are compared by value, so they are not
// usable as map keys. They carry no internal synchronization: concurrent
// mutation of the same record must be serialized by the caller.
type Record struct {
	schema *Schema
	values []value.Value
}

// New constructs a record from positional and named values.
//
// Fields are written in declared order first: each field receives the
// corresponding positional value if supplied, else its default if one
// exists, else value.Null(). Named values are then applied in the order
// given, so a named value overrides anything set in the first pass. Every
// write runs through the validator.
//
// New fails with ErrArityExceeded when more values than fields are supplied,
// with ErrUnknownField when a named value does not match a field, and with
// the validator's error, unmodified, when a write is rejected. On failure no
// record is returned; a partially written instance never escapes.
func (s *Schema) New(positional []value.Value, named ...NamedValue) (*Record, error) {
	if got := len(positional) + len(named); got > len(s.fields) {
		return nil, &ErrArityExceeded{Schema: s.name, Max: len(s.fields), Got: got}
	}

	r := &Record{
		schema: s,
		values: make([]value.Value, len(s.fields)),
	}

	for i, field := range s.fields {
		v := value.Null()
		switch {
		case i < len(positional):
			v = positional[i]
		case i < len(s.defaults):
			// Defaults are shared schema state; clone so records never
			// alias a default's array backing.
			v = s.defaults[i].Clone()
		}
		if err := r.write(field, i, v); err != nil {
			return nil, err
		}
	}

	for _, nv := range named {
		i, ok := s.index[nv.Name]
		if !ok {
			return nil, &ErrUnknownField{Schema: s.name, Field: nv.Name}
		}
		if err := r.write(nv.Name, i, nv.Value); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustNew is like New but panics on error.
func (s *Schema) MustNew(positional []value.Value, named ...NamedValue) *Record {
	r, err := s.New(positional, named...)
	if err != nil {
		panic(err)
	}
	return r
}

// write routes a single field write through the validator and stores exactly
// what it returned. On rejection the slot keeps its prior value.
func (r *Record) write(field string, i int, v value.Value) error {
	if fn := r.schema.validator; fn != nil {
		accepted, err := fn(field, v)
		if err != nil {
			r.schema.logger.Debug("write rejected", "field", field, "error", err)
			return err
		}
		v = accepted
	}
	r.values[i] = v
	return nil
}

// Schema returns the schema the record was constructed from.
func (r *Record) Schema() *Schema { return r.schema }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.values) }

// Get returns the current value of the named field.
func (r *Record) Get(field string) (value.Value, error) {
	i, ok := r.schema.index[field]
	if !ok {
		return value.Value{}, &ErrUnknownField{Schema: r.schema.name, Field: field}
	}
	return r.values[i], nil
}

// Set writes a value to the named field through the validator. On validator
// failure the field keeps its prior value and the error propagates
// unmodified.
func (r *Record) Set(field string, v value.Value) error {
	i, ok := r.schema.index[field]
	if !ok {
		return &ErrUnknownField{Schema: r.schema.name, Field: field}
	}
	return r.write(field, i, v)
}

// Delete always fails: the field set is closed for the lifetime of a record.
func (r *Record) Delete(field string) error {
	return &ErrDeleteUnsupported{Schema: r.schema.name, Field: field}
}

// At returns the value at position i in declared field order. Negative
// indices count from the end. Requires an indexable schema.
func (r *Record) At(i int) (value.Value, error) {
	if !r.schema.indexable {
		return value.Value{}, &ErrNotIndexable{Schema: r.schema.name, Op: "positional access"}
	}
	i, err := r.normalizeIndex(i)
	if err != nil {
		return value.Value{}, err
	}
	return r.values[i], nil
}

// SetAt writes the value at position i through the validator, with the same
// index normalization as At. Requires an indexable schema.
func (r *Record) SetAt(i int, v value.Value) error {
	if !r.schema.indexable {
		return &ErrNotIndexable{Schema: r.schema.name, Op: "positional access"}
	}
	i, err := r.normalizeIndex(i)
	if err != nil {
		return err
	}
	return r.write(r.schema.fields[i], i, v)
}

// Slice returns a snapshot of the values selected by start, stop and step
// under standard slicing semantics: negative bounds count from the end,
// out-of-range bounds clamp, and a negative step walks backwards. A zero
// step fails with ErrInvalidStep. Requires an indexable schema.
func (r *Record) Slice(start, stop, step int) ([]value.Value, error) {
	if !r.schema.indexable {
		return nil, &ErrNotIndexable{Schema: r.schema.name, Op: "slicing"}
	}
	indices, err := sliceIndices(start, stop, step, len(r.values))
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(indices))
	for _, i := range indices {
		out = append(out, r.values[i])
	}
	return out, nil
}

// SetSlice assigns values[k] to the k-th index selected by start, stop and
// step, stopping when either the indices or the values run out; mismatched
// lengths are not an error. Each assignment runs through the validator.
// Requires an indexable schema.
func (r *Record) SetSlice(start, stop, step int, values []value.Value) error {
	if !r.schema.indexable {
		return &ErrNotIndexable{Schema: r.schema.name, Op: "slicing"}
	}
	indices, err := sliceIndices(start, stop, step, len(r.values))
	if err != nil {
		return err
	}
	for k, i := range indices {
		if k >= len(values) {
			break
		}
		if err := r.write(r.schema.fields[i], i, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether some field currently holds a value equal to v.
// Requires an indexable schema.
func (r *Record) Contains(v value.Value) (bool, error) {
	if !r.schema.indexable {
		return false, &ErrNotIndexable{Schema: r.schema.name, Op: "containment"}
	}
	for i := range r.values {
		if value.Equal(r.values[i], v) {
			return true, nil
		}
	}
	return false, nil
}

// ToTuple returns a fresh snapshot of the field values in declared order.
// It is available for both schema flavors: for indexable records it backs
// iteration, for named-only records it is the explicit projection.
func (r *Record) ToTuple() []value.Value {
	return append([]value.Value(nil), r.values...)
}

// AsDict returns a snapshot map of field name to current value. Declared
// order is available via Schema().Fields().
func (r *Record) AsDict() map[string]value.Value {
	m := make(map[string]value.Value, len(r.values))
	for i, f := range r.schema.fields {
		m[f] = r.values[i]
	}
	return m
}

// Clone returns an independent copy of the record. The copy shares the
// schema but not the value storage.
func (r *Record) Clone() *Record {
	values := make([]value.Value, len(r.values))
	for i := range r.values {
		values[i] = r.values[i].Clone()
	}
	return &Record{schema: r.schema, values: values}
}

// String renders the record as Name(field1=value1, field2=value2, ...) in
// declared field order.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.schema.name)
	sb.WriteByte('(')
	for i, f := range r.schema.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f)
		sb.WriteByte('=')
		sb.WriteString(r.values[i].String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// normalizeIndex resolves negative indices against the field count.
func (r *Record) normalizeIndex(i int) (int, error) {
	n := len(r.values)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, &ErrIndexOutOfRange{Index: i, Length: n}
	}
	return i, nil
}

// sliceIndices expands start/stop/step into the selected indices, clamping
// out-of-range bounds instead of failing, matching standard slice-range
// semantics.
func sliceIndices(start, stop, step, length int) ([]int, error) {
	if step == 0 {
		return nil, ErrInvalidStep
	}

	clamp := func(i int) int {
		if i < 0 {
			i += length
		}
		if step > 0 {
			return max(0, min(i, length))
		}
		if i < 0 {
			return -1
		}
		return min(i, length-1)
	}
	start, stop = clamp(start), clamp(stop)

	var indices []int
	if step > 0 {
		for i := start; i < stop; i += step {
			indices = append(indices, i)
		}
	} else {
		for i := start; i > stop; i += step {
			indices = append(indices, i)
		}
	}
	return indices, nil
}
