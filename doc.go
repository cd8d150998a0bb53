// Package recgo provides a runtime factory for editable record types:
// named, ordered, fixed field sets with defaults and validated writes.
//
// A schema is defined once from a display name and a field list; records are
// then constructed from it, read and written by field name and, for
// indexable schemas, by position and slice. Every write runs through an
// optional validator that can accept, adjust or reject the value.
//
// # Quick Start
//
//	Rgb, _ := recgo.Define("Rgb", []string{"red green blue"},
//	    recgo.WithDefaults(value.Int(0), value.Int(0), value.Int(0)))
//
//	navy, _ := Rgb.New(nil, recgo.Named("blue", value.Int(128)))
//	fmt.Println(navy) // Rgb(red=0, green=0, blue=128)
//
//	_ = navy.Set("green", value.Int(64))
//	v, _ := navy.At(-1) // value.Int(128)
//
// # Validation
//
// A validator is consulted on every field write, at construction time and
// later. It returns the value actually stored, so it can clamp or substitute
// instead of rejecting:
//
//	clampAlpha := func(field string, v value.Value) (value.Value, error) {
//	    if field != "alpha" {
//	        return v, nil
//	    }
//	    if f, ok := v.AsFloat64(); ok && (f < 0 || f > 1) {
//	        return value.Float(1.0), nil // silently default to opaque
//	    }
//	    return v, nil
//	}
//
// # Flavors
//
// Schemas are indexable by default: records behave like mutable fixed-length
// sequences with named fields (At, SetAt, Slice, SetSlice, Contains).
// Defining a schema with WithoutIndexing restricts records to named access
// plus the ToTuple and AsDict projections.
//
// # Equality and Ordering
//
// Records compare by value: Equal and Less require the same structural
// schema identity (name plus field list) and then compare field values
// pairwise in declared order. Records are mutable and compared by value, so
// they are not usable as map keys.
//
// Schemas are immutable after Define and safe to share across goroutines;
// records are plain mutable holders and concurrent mutation of one record
// must be serialized by the caller.
package recgo
