// Package value provides the typed dynamic values stored in recgo record
// fields.
//
// The value system is intentionally a small closed model rather than
// interface{}: every Value carries an explicit Kind, comparison never uses
// reflection, and strings are interned so repeated values are cheap to
// compare.
//
// # Value Types
//
// Field values can be:
//
//   - String: value.String("square")
//   - Int: value.Int(5)
//   - Float: value.Float(0.9)
//   - Bool: value.Bool(true)
//   - Array: value.Array(value.Int(1), value.Int(2))
//   - Null: value.Null()
//
// Null is the absent sentinel: it is what a record field holds when neither
// an argument nor a default was supplied for it.
//
// # Comparison
//
// Equal and Compare define value equality and ordering. Ints and floats
// compare numerically across kinds (Int(1) == Float(1.0)); other kinds only
// compare equal to themselves. Compare is total, so record ordering built on
// it is deterministic for any field contents.
package value
