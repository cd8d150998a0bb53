package value

// Equal compares two values for equality.
//
// Ints and floats compare numerically across kinds, so Int(1) equals
// Float(1.0). All other cross-kind comparisons are false.
func Equal(a, b Value) bool {
	if a.Kind == KindNull && b.Kind == KindNull {
		return true
	}
	if a.Kind == KindNull || b.Kind == KindNull {
		return false
	}

	if isNumber(a) && isNumber(b) {
		// Prefer exact int compare when possible.
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I64 == b.I64
		}
		return asFloat64(a) == asFloat64(b)
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.B == b.B
	case KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !Equal(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two values, returning -1, 0 or +1.
//
// Numbers compare numerically across the int/float kinds. Values of the
// same kind compare by their natural order (bytewise for strings, false
// before true for bools, element-wise for arrays with the shorter prefix
// first). Mixed non-numeric kinds fall back to kind rank so the relation
// stays total; null sorts before everything.
func Compare(a, b Value) int {
	if Equal(a, b) {
		return 0
	}

	if isNumber(a) && isNumber(b) {
		if a.Kind == KindInt && b.Kind == KindInt {
			return compareOrdered(a.I64, b.I64)
		}
		return compareOrdered(asFloat64(a), asFloat64(b))
	}

	if a.Kind != b.Kind {
		return compareOrdered(kindRank(a.Kind), kindRank(b.Kind))
	}

	switch a.Kind {
	case KindString:
		return compareOrdered(a.s.Value(), b.s.Value())
	case KindBool:
		if !a.B {
			return -1
		}
		return 1
	case KindArray:
		n := min(len(a.A), len(b.A))
		for i := 0; i < n; i++ {
			if c := Compare(a.A[i], b.A[i]); c != 0 {
				return c
			}
		}
		return compareOrdered(len(a.A), len(b.A))
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less(a, b Value) bool { return Compare(a, b) < 0 }

func isNumber(v Value) bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

func asFloat64(v Value) float64 {
	if v.Kind == KindInt {
		return float64(v.I64)
	}
	return v.F64
}

// kindRank collapses the numeric kinds so int/float ordering stays purely
// numeric; everything else orders null < number < string < bool < array.
func kindRank(k Kind) int {
	switch k {
	case KindNull:
		return 0
	case KindInt, KindFloat:
		return 1
	case KindString:
		return 2
	case KindBool:
		return 3
	case KindArray:
		return 4
	default:
		return 5
	}
}

func compareOrdered[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
