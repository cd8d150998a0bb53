package recgo

import "github.com/hupe1980/recgo/value"

// Equal reports whether two records have the same structural schema identity
// (display name and field list, see Schema.Fingerprint) and pairwise equal
// field values in declared order.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	if !sameType(r, other) {
		return false
	}
	for i := range r.values {
		if !value.Equal(r.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

// Less reports whether r orders strictly before other by lexicographic
// comparison of field values in declared order.
//
// Records of different schema identities are never less than each other:
// Less returns false in both directions, so the relation is not total across
// mixed schemas and mixed records must not be sorted together.
func (r *Record) Less(other *Record) bool {
	if other == nil {
		return false
	}
	if !sameType(r, other) {
		return false
	}
	for i := range r.values {
		switch c := value.Compare(r.values[i], other.values[i]); {
		case c < 0:
			return true
		case c > 0:
			return false
		}
	}
	return false
}

// LessEqual reports r == other or r < other.
func (r *Record) LessEqual(other *Record) bool {
	return r.Less(other) || r.Equal(other)
}

// Greater is derived from Equal and Less by total-ordering composition:
// neither equal nor less. It is only meaningful for records of the same
// schema identity.
func (r *Record) Greater(other *Record) bool {
	return !r.Less(other) && !r.Equal(other)
}

// GreaterEqual reports the negation of Less.
func (r *Record) GreaterEqual(other *Record) bool {
	return !r.Less(other)
}

// sameType gates comparison on structural schema identity rather than on the
// display name alone, so two same-named schemas with different field sets
// never reach a pairwise value comparison.
func sameType(a, b *Record) bool {
	return a.schema == b.schema || a.schema.fingerprint == b.schema.fingerprint
}
